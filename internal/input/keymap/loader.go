package keymap

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/config/loader"
	"github.com/dshills/kestrel/internal/input/mode"
)

// FileName is the key bindings file inside the config directory.
const FileName = "keys.toml"

// DefaultPath returns the path of the user's key bindings file.
func DefaultPath() string {
	return filepath.Join(config.DefaultConfigDir(), FileName)
}

// LoadFile reads user bindings from a TOML file and registers them over the
// defaults. A missing file is not an error.
//
// Each table names a mode. A value is either an action name or a table with
// action, text and count:
//
//	[insert]
//	"C-d" = "selection.addBelow"
//	"A-i" = { action = "edit.insert", text = "if err != nil {" }
//
//	[view]
//	"Space" = { action = "view.scrollDown", count = 10 }
func (r *Resolver) LoadFile(path string) error {
	data, err := loader.NewTOMLLoader(path).Load()
	if err != nil {
		return err
	}
	return r.register(path, data)
}

// LoadReader is LoadFile for an io.Reader.
func (r *Resolver) LoadReader(rd io.Reader) error {
	data, err := loader.NewTOMLLoader("").LoadFromReader(rd)
	if err != nil {
		return err
	}
	return r.register("<reader>", data)
}

func (r *Resolver) register(source string, data map[string]any) error {
	keymaps, err := decode(source, data)
	if err != nil {
		return err
	}
	for _, km := range keymaps {
		r.Register(km)
	}
	return nil
}

// decode turns the parsed file into keymaps. Modes are visited in sorted
// order so the first error reported is stable.
func decode(source string, data map[string]any) ([]*Keymap, error) {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	var keymaps []*Keymap
	for _, name := range names {
		kind, err := mode.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		table, ok := data[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: [%s] must be a table", source, name)
		}

		km := NewKeymap(kind).WithSource(source)
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b, err := decodeBinding(k, table[k])
			if err != nil {
				return nil, fmt.Errorf("%s: [%s] %w", source, name, err)
			}
			if err := km.Bind(b); err != nil {
				return nil, fmt.Errorf("%s: [%s] %w", source, name, err)
			}
		}
		keymaps = append(keymaps, km)
	}
	return keymaps, nil
}

func decodeBinding(keys string, v any) (Binding, error) {
	switch v := v.(type) {
	case string:
		return NewBinding(keys, v), nil
	case map[string]any:
		b := Binding{Keys: keys}
		for field, value := range v {
			switch field {
			case "action":
				s, ok := value.(string)
				if !ok {
					return b, fmt.Errorf("binding %q: action must be a string", keys)
				}
				b.Action = s
			case "text":
				s, ok := value.(string)
				if !ok {
					return b, fmt.Errorf("binding %q: text must be a string", keys)
				}
				b.Text = s
			case "description":
				s, ok := value.(string)
				if !ok {
					return b, fmt.Errorf("binding %q: description must be a string", keys)
				}
				b.Description = s
			case "count":
				n, ok := value.(int64)
				if !ok || n < 0 {
					return b, fmt.Errorf("binding %q: count must be a non-negative integer", keys)
				}
				b.Count = int(n)
			default:
				return b, fmt.Errorf("binding %q: unknown field %q", keys, field)
			}
		}
		return b, nil
	}
	return Binding{}, fmt.Errorf("binding %q: value must be an action name or a table", keys)
}
