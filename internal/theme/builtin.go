package theme

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

// Built-in palettes shipped with the binary.
//
//go:embed defaults/*.theme
var builtinThemes embed.FS

// Builtin loads a built-in theme by name. Default()'s palette is always
// available under its own name.
func Builtin(name string) (*Theme, error) {
	def := Default()
	if strings.EqualFold(name, def.Name) {
		return def, nil
	}
	f, err := builtinThemes.Open("defaults/" + strings.ToLower(name) + ".theme")
	if err != nil {
		return nil, fmt.Errorf("theme %q not built in", name)
	}
	defer f.Close()
	return Parse(f)
}

// BuiltinNames lists the built-in theme names, sorted.
func BuiltinNames() []string {
	names := []string{Default().Name}
	entries, err := builtinThemes.ReadDir("defaults")
	if err == nil {
		for _, entry := range entries {
			names = append(names, strings.TrimSuffix(entry.Name(), ".theme"))
		}
	}
	sort.Strings(names)
	return names
}

// Find resolves a theme name against config-defined themes first, then
// the built-ins. An empty name resolves to the default palette.
func Find(name string, extra map[string]*Theme) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if t, ok := extra[name]; ok {
		return t, nil
	}
	t, err := Builtin(name)
	if err != nil {
		return nil, fmt.Errorf("theme %q not found", name)
	}
	return t, nil
}
