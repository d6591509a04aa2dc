// Package loader reads kestrel configuration sources into plain maps.
//
// Each loader returns a map[string]any keyed by setting name, with nested
// maps for tables such as [display]. A source that does not exist yields a
// nil map. The config package merges the maps in precedence order with
// DeepMerge and decodes the result.
package loader

import "os"

// FileSystem is the part of a file system the TOML loader reads through.
// Tests substitute an in-memory implementation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the operating system.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the operating system file system.
func DefaultFS() FileSystem {
	return OSFS{}
}
