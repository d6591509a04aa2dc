package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/kestrel/internal/config/loader"
	"github.com/dshills/kestrel/internal/engine/selection"
)

const (
	// EnvPrefix starts every environment variable the editor reads.
	EnvPrefix = "KESTREL_"

	// FileName is the configuration file name inside the config directory.
	FileName = "config.toml"

	maxIncludeDepth = 8
)

// Setting names as they appear in the TOML file.
const (
	KeySemantics        = "semantics"
	KeyUseFullFilePath  = "use_full_file_path"
	KeyUseHardTab       = "use_hard_tab"
	KeyTabWidth         = "tab_width"
	KeyViewScrollAmount = "view_scroll_amount"
	KeyShowCursorColumn = "show_cursor_column"
	KeyShowCursorLine   = "show_cursor_line"
	KeyLogFile          = "log_file"
	KeyLogLevel         = "log_level"
	KeyMaxUndo          = "max_undo"
	KeyDisplay          = "display"
)

// Config is the editor configuration. It is read once at startup and
// treated as a value afterwards.
type Config struct {
	// Semantics selects bar or block cursors.
	Semantics selection.Semantics

	// UseFullFilePath shows the whole path instead of the base name.
	UseFullFilePath bool

	// UseHardTab inserts a literal tab instead of spaces.
	UseHardTab bool

	// TabWidth is the number of columns in a tab stop.
	TabWidth int

	// ViewScrollAmount is how far one scroll step moves the view.
	ViewScrollAmount int

	ShowCursorColumn bool
	ShowCursorLine   bool

	// LogFile receives the log. Empty disables logging.
	LogFile string

	// LogLevel is one of debug, info, warn or error.
	LogLevel string

	// MaxUndo bounds the undo stack. Zero means unbounded.
	MaxUndo int

	// Display maps each error class to how it is shown.
	Display map[ErrorClass]DisplayMode

	// Source is the file the configuration came from, empty if none.
	Source string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Semantics:        selection.Block,
		UseFullFilePath:  false,
		UseHardTab:       false,
		TabWidth:         4,
		ViewScrollAmount: 1,
		ShowCursorColumn: false,
		ShowCursorLine:   false,
		LogLevel:         "info",
		MaxUndo:          0,
		Display:          DefaultDisplay(),
	}
}

// DisplayFor returns the display mode configured for class.
func (c Config) DisplayFor(class ErrorClass) DisplayMode {
	if d, ok := c.Display[class]; ok {
		return d
	}
	if d, ok := DefaultDisplay()[class]; ok {
		return d
	}
	return DisplayError
}

// Validate checks every setting and returns an ErrorList of all problems,
// or nil.
func (c Config) Validate() error {
	var errs ErrorList

	if c.Semantics != selection.Bar && c.Semantics != selection.Block {
		errs = append(errs, &ValidationError{Key: KeySemantics, Message: "must be bar or block", Value: c.Semantics})
	}
	if c.TabWidth < 1 {
		errs = append(errs, &ValidationError{Key: KeyTabWidth, Message: "must be at least 1", Value: c.TabWidth})
	}
	if c.ViewScrollAmount < 1 {
		errs = append(errs, &ValidationError{Key: KeyViewScrollAmount, Message: "must be at least 1", Value: c.ViewScrollAmount})
	}
	if c.MaxUndo < 0 {
		errs = append(errs, &ValidationError{Key: KeyMaxUndo, Message: "must not be negative", Value: c.MaxUndo})
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Key: KeyLogLevel, Message: "must be debug, info, warn or error", Value: c.LogLevel})
	}

	classes := make([]string, 0, len(c.Display))
	for class := range c.Display {
		classes = append(classes, string(class))
	}
	sort.Strings(classes)
	for _, name := range classes {
		class := ErrorClass(name)
		key := KeyDisplay + "." + name
		if !knownClass(class) {
			errs = append(errs, &ValidationError{Key: key, Message: "unknown error class", Value: name})
			continue
		}
		if d := c.Display[class]; d > DisplayIgnore {
			errs = append(errs, &ValidationError{Key: key, Message: "unknown display mode", Value: d})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	file      string
	configDir string
	fs        loader.FileSystem
	env       func() []string
}

// WithFile reads the configuration from path. The file must exist.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.file = path
	}
}

// WithConfigDir sets the directory searched for config.toml.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithFileSystem replaces the file system the loader reads from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnvironment replaces the process environment. A nil list disables
// environment overrides.
func WithEnvironment(env []string) Option {
	return func(o *loadOptions) {
		o.env = func() []string { return env }
	}
}

// Load builds the configuration from the built-in defaults, then the TOML
// file, then KESTREL_* environment variables. A missing default file is not
// an error; a missing file named by WithFile is.
func Load(opts ...Option) (Config, error) {
	o := loadOptions{
		configDir: DefaultConfigDir(),
		fs:        loader.DefaultFS(),
		env:       os.Environ,
	}
	for _, opt := range opts {
		opt(&o)
	}

	path := o.file
	if path == "" {
		path = filepath.Join(o.configDir, FileName)
	}

	fileCfg, err := loader.NewTOMLLoaderWithFS(o.fs, path).LoadWithIncludes(path, maxIncludeDepth)
	if err != nil {
		return Config{}, err
	}
	if fileCfg == nil && o.file != "" {
		return Config{}, fmt.Errorf("%w: %s", ErrFileNotFound, o.file)
	}

	envCfg, err := loader.NewEnvLoaderFrom(EnvPrefix, o.env(), KeyDisplay).Load()
	if err != nil {
		return Config{}, err
	}

	cfg, err := FromMap(loader.DeepMerge(fileCfg, envCfg))
	if err != nil {
		return Config{}, err
	}
	if fileCfg != nil {
		cfg.Source = path
	}
	return cfg, nil
}

// FromMap applies the settings in m over the defaults and validates the
// result.
func FromMap(m map[string]any) (Config, error) {
	cfg := Default()
	var errs ErrorList

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := cfg.set(key, m[key]); err != nil {
			errs = append(errs, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err.(ErrorList)...)
	}
	if len(errs) > 0 {
		return Config{}, errs
	}
	return cfg, nil
}

func (c *Config) set(key string, value any) error {
	var err error
	switch key {
	case KeySemantics:
		var s string
		if s, err = asString(key, value); err == nil {
			if c.Semantics, err = selection.ParseSemantics(s); err != nil {
				err = &ValidationError{Key: key, Message: "must be bar or block", Value: s}
			}
		}
	case KeyUseFullFilePath:
		c.UseFullFilePath, err = asBool(key, value)
	case KeyUseHardTab:
		c.UseHardTab, err = asBool(key, value)
	case KeyTabWidth:
		c.TabWidth, err = asInt(key, value)
	case KeyViewScrollAmount:
		c.ViewScrollAmount, err = asInt(key, value)
	case KeyShowCursorColumn:
		c.ShowCursorColumn, err = asBool(key, value)
	case KeyShowCursorLine:
		c.ShowCursorLine, err = asBool(key, value)
	case KeyLogFile:
		c.LogFile, err = asString(key, value)
	case KeyLogLevel:
		var s string
		if s, err = asString(key, value); err == nil {
			c.LogLevel = strings.ToLower(s)
		}
	case KeyMaxUndo:
		c.MaxUndo, err = asInt(key, value)
	case KeyDisplay:
		err = c.setDisplay(value)
	default:
		err = &ValidationError{Key: key, Message: "unknown setting", Value: value}
	}
	return err
}

func (c *Config) setDisplay(value any) error {
	table, ok := value.(map[string]any)
	if !ok {
		return &TypeError{Key: KeyDisplay, Expected: "table", Actual: typeName(value)}
	}

	display := make(map[ErrorClass]DisplayMode, len(c.Display))
	for class, mode := range c.Display {
		display[class] = mode
	}

	var errs ErrorList
	for name, v := range table {
		key := KeyDisplay + "." + name
		s, err := asString(key, v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		mode, err := ParseDisplayMode(s)
		if err != nil {
			errs = append(errs, &ValidationError{Key: key, Message: "unknown display mode", Value: s})
			continue
		}
		display[ErrorClass(strings.ToLower(name))] = mode
	}
	c.Display = display

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DefaultConfigDir returns the directory holding the user's config file.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kestrel")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kestrel")
}

// DefaultPath returns the path of the user's config file.
func DefaultPath() string {
	return filepath.Join(DefaultConfigDir(), FileName)
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Key: key, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

func asBool(key string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Key: key, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

func asInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &TypeError{Key: key, Expected: "int", Actual: typeName(v)}
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
