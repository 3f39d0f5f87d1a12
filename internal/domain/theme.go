package domain

import "fmt"

type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// Toggle returns the opposite display mode
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeModeLight {
		return ThemeModeDark
	}
	return ThemeModeLight
}

// Valid reports whether m is one of the two display modes
func (m ThemeMode) Valid() bool {
	return m == ThemeModeLight || m == ThemeModeDark
}

// ParseThemeMode accepts "light" or "dark"
func ParseThemeMode(s string) (ThemeMode, error) {
	m := ThemeMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown theme mode %q (want light or dark)", s)
	}
	return m, nil
}

type ColorKey string

const (
	ColorIndigo  ColorKey = "indigo"
	ColorEmerald ColorKey = "emerald"
	ColorRose    ColorKey = "rose"
	ColorAmber   ColorKey = "amber"
	ColorPurple  ColorKey = "purple"
	ColorCyan    ColorKey = "cyan"
)

// ColorKeys lists the accent colors in display order
func ColorKeys() []ColorKey {
	return []ColorKey{ColorIndigo, ColorEmerald, ColorRose, ColorAmber, ColorPurple, ColorCyan}
}

// Valid reports whether c has a palette entry
func (c ColorKey) Valid() bool {
	_, ok := palette[c]
	return ok
}

// Next returns the color after c in display order, wrapping around
func (c ColorKey) Next() ColorKey {
	return c.step(1)
}

// Prev returns the color before c in display order, wrapping around
func (c ColorKey) Prev() ColorKey {
	return c.step(-1)
}

func (c ColorKey) step(delta int) ColorKey {
	keys := ColorKeys()
	idx := 0
	for i, k := range keys {
		if k == c {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(keys)) % len(keys)
	return keys[idx]
}

// ParseColorKey accepts one of the palette keys
func ParseColorKey(s string) (ColorKey, error) {
	c := ColorKey(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// ThemePreference is the persisted appearance choice
type ThemePreference struct {
	Mode  ThemeMode `json:"mode"`
	Color ColorKey  `json:"color"`
}

// DefaultThemePreference is used when nothing valid has been stored
func DefaultThemePreference() ThemePreference {
	return ThemePreference{
		Mode:  ThemeModeLight,
		Color: ColorIndigo,
	}
}

// Valid reports whether both fields hold known values
func (p ThemePreference) Valid() bool {
	return p.Mode.Valid() && p.Color.Valid()
}
