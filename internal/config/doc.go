// Package config loads the kestrel editor configuration.
//
// Settings come from three layers, highest last:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← KESTREL_TAB_WIDTH=8
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/kestrel/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// The file is TOML:
//
//	semantics = "bar"
//	tab_width = 8
//	use_hard_tab = false
//	include = ["colors.toml"]
//
//	[display]
//	same_state = "ignore"
//	read_only = "warning"
//
// The [display] table maps each error class to error, warning, notify, info
// or ignore. Unset classes keep their defaults.
//
// Load returns every problem it finds at once as an ErrorList. A malformed
// file yields a *ParseError with the line and column.
package config
