package theme

import (
	"errors"
	"fmt"
)

var ErrThemeNotFound = errors.New("theme not found")

// Registry holds the selectable themes in the order they are listed.
// The first registered theme is the fallback for unknown names.
type Registry struct {
	names  []string
	byName map[string]*Theme
}

func NewRegistry(themes ...*Theme) *Registry {
	r := &Registry{byName: make(map[string]*Theme, len(themes))}
	for _, t := range themes {
		if _, dup := r.byName[t.Name]; dup {
			continue
		}
		r.names = append(r.names, t.Name)
		r.byName[t.Name] = t
	}
	return r
}

func (r *Registry) Lookup(name string) (*Theme, error) {
	if t, ok := r.byName[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
}

// Resolve never fails: empty or unknown names get the fallback theme.
func (r *Registry) Resolve(name string) *Theme {
	if t, ok := r.byName[name]; ok {
		return t
	}
	if len(r.names) == 0 {
		return DefaultTheme()
	}
	return r.byName[r.names[0]]
}

func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

var builtin = NewRegistry(DefaultTheme(), DarkTheme(), LightTheme())

func LookupTheme(name string) (*Theme, error) { return builtin.Lookup(name) }

// ResolveTheme is what the CLI uses for the configured theme name.
func ResolveTheme(name string) *Theme { return builtin.Resolve(name) }

func ListThemes() []string { return builtin.Names() }

func ThemeExists(name string) bool { return builtin.Has(name) }
