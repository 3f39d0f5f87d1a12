package domain

import "fmt"

// PaletteTokens are the four color tokens the renderer uses for one mode.
// Tokens follow the <color>-<shade>[/<alpha>] naming, e.g. "rose-900/30".
type PaletteTokens struct {
	Primary      string
	PrimaryHover string
	PrimaryText  string
	Secondary    string
}

// PaletteEntry holds the display name and both modes' tokens for one color
type PaletteEntry struct {
	Name  string
	Light PaletteTokens
	Dark  PaletteTokens
}

// Tokens returns the token set for the given mode
func (e PaletteEntry) Tokens(mode ThemeMode) PaletteTokens {
	if mode == ThemeModeDark {
		return e.Dark
	}
	return e.Light
}

var palette = map[ColorKey]PaletteEntry{
	ColorIndigo:  newPaletteEntry(ColorIndigo, "Indigo"),
	ColorEmerald: newPaletteEntry(ColorEmerald, "Emerald"),
	ColorRose:    newPaletteEntry(ColorRose, "Rose"),
	ColorAmber:   newPaletteEntry(ColorAmber, "Amber"),
	ColorPurple:  newPaletteEntry(ColorPurple, "Purple"),
	ColorCyan:    newPaletteEntry(ColorCyan, "Cyan"),
}

func newPaletteEntry(key ColorKey, name string) PaletteEntry {
	shade := func(n int) string { return fmt.Sprintf("%s-%d", key, n) }
	return PaletteEntry{
		Name: name,
		Light: PaletteTokens{
			Primary:      shade(500),
			PrimaryHover: shade(600),
			PrimaryText:  shade(600),
			Secondary:    shade(100),
		},
		Dark: PaletteTokens{
			Primary:      shade(400),
			PrimaryHover: shade(300),
			PrimaryText:  shade(400),
			Secondary:    shade(900) + "/30",
		},
	}
}

// LookupPalette returns the entry for a color key. ok is false for keys
// outside the fixed set.
func LookupPalette(key ColorKey) (PaletteEntry, bool) {
	e, ok := palette[key]
	return e, ok
}

// ActivePalette is the resolved palette for a preference
type ActivePalette struct {
	Key    ColorKey
	Mode   ThemeMode
	Name   string
	Tokens PaletteTokens
}

// Resolve looks up the tokens for the preference, falling back to the
// default color when the stored key is unknown.
func (p ThemePreference) Resolve() ActivePalette {
	key := p.Color
	e, ok := palette[key]
	if !ok {
		key = DefaultThemePreference().Color
		e = palette[key]
	}
	return ActivePalette{
		Key:    key,
		Mode:   p.Mode,
		Name:   e.Name,
		Tokens: e.Tokens(p.Mode),
	}
}
