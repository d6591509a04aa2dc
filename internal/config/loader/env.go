package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
//
// KESTREL_TAB_WIDTH becomes tab_width. A variable whose first word names a
// table, such as KESTREL_DISPLAY_SAME_STATE, becomes display.same_state.
type EnvLoader struct {
	prefix  string
	tables  map[string]bool
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "KESTREL_").
func NewEnvLoader(prefix string, tables ...string) *EnvLoader {
	l := &EnvLoader{
		prefix:  prefix,
		tables:  make(map[string]bool, len(tables)),
		environ: os.Environ,
	}
	for _, t := range tables {
		l.tables[strings.ToLower(t)] = true
	}
	return l
}

// NewEnvLoaderFrom creates a loader that reads from a fixed environment
// list in KEY=VALUE form.
func NewEnvLoaderFrom(prefix string, env []string, tables ...string) *EnvLoader {
	l := NewEnvLoader(prefix, tables...)
	l.environ = func() []string { return env }
	return l
}

// Load reads environment variables and returns a configuration map.
// Empty string values are treated as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}
		name, value, ok := strings.Cut(env, "=")
		if !ok || name == l.prefix {
			continue
		}

		setByPath(config, l.envToPath(name), parseValue(value))
	}

	return config, nil
}

// envToPath converts KESTREL_DISPLAY_SAME_STATE to display.same_state.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	if table, rest, ok := strings.Cut(name, "_"); ok && l.tables[table] && rest != "" {
		return table + "." + rest
	}
	return name
}

// parseValue interprets booleans and integers and leaves everything else a
// string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
