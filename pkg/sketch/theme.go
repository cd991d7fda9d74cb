package sketch

import (
	"maps"
	"slices"
)

// Theme is a named color triple applied uniformly to one render.
// Themes are process-wide constants and never mutated.
type Theme struct {
	Background string // full-canvas backdrop
	Ink        string // strokes and labels
	Accent     string // fills and emphasis
}

// DefaultTheme is the palette used when none is requested or the requested
// name is unknown.
const DefaultTheme = "slate"

var themes = map[string]Theme{
	"slate": {Background: "#0f172a", Ink: "#93c5fd", Accent: "#60a5fa"},
	"sand":  {Background: "#f1f5f9", Ink: "#0f172a", Accent: "#64748b"},
}

// LookupTheme returns the palette for name. Unknown names silently fall back
// to the slate palette rather than failing the render.
func LookupTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames returns the built-in theme names in sorted order.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// KnownTheme reports whether name is a built-in theme. An empty name counts
// as known since it resolves to the default.
func KnownTheme(name string) bool {
	if name == "" {
		return true
	}
	_, ok := themes[name]
	return ok
}
