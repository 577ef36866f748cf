package domain

// Theme is the visual theme mode.
type Theme string

// Supported themes.
const (
	ThemeLight        Theme = "light"
	ThemeDark         Theme = "dark"
	ThemeHighContrast Theme = "highContrast"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeHighContrast:
		return true
	}
	return false
}

// Palette selects the color tokens assigned to the built-in activity types.
type Palette string

// Supported palettes.
const (
	PaletteNeutral Palette = "neutral"
	PalettePastel  Palette = "pastel"
	PaletteBold    Palette = "bold"
	PaletteMono    Palette = "mono"
)

var paletteColors = map[Palette][5]string{
	PaletteNeutral: {"bg-gray-200", "bg-slate-200", "bg-zinc-200", "bg-stone-200", "bg-neutral-200"},
	PalettePastel:  {"bg-pink-200", "bg-blue-200", "bg-green-200", "bg-purple-200", "bg-yellow-200"},
	PaletteBold:    {"bg-pink-300", "bg-blue-300", "bg-green-300", "bg-purple-300", "bg-yellow-300"},
	PaletteMono:    {"bg-gray-200", "bg-gray-300", "bg-gray-200", "bg-slate-200", "bg-slate-300"},
}

// Valid reports whether p is a known palette.
func (p Palette) Valid() bool {
	_, ok := paletteColors[p]
	return ok
}

// Colors returns the five color tokens of the palette. Unknown palettes
// resolve to pastel.
func (p Palette) Colors() [5]string {
	if colors, ok := paletteColors[p]; ok {
		return colors
	}
	return paletteColors[PalettePastel]
}
