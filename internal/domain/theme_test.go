package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteCoversEveryColorAndMode(t *testing.T) {
	keys := ColorKeys()
	require.Len(t, keys, 6)

	for _, key := range keys {
		e, ok := LookupPalette(key)
		require.True(t, ok, "missing palette entry for %s", key)
		assert.NotEmpty(t, e.Name)
		for _, mode := range []ThemeMode{ThemeModeLight, ThemeModeDark} {
			tok := e.Tokens(mode)
			assert.NotEmpty(t, tok.Primary)
			assert.NotEmpty(t, tok.PrimaryHover)
			assert.NotEmpty(t, tok.PrimaryText)
			assert.NotEmpty(t, tok.Secondary)
		}
	}

	_, ok := LookupPalette("teal")
	assert.False(t, ok)
}

func TestPaletteTokens(t *testing.T) {
	e, _ := LookupPalette(ColorRose)
	assert.Equal(t, "Rose", e.Name)
	assert.Equal(t, PaletteTokens{
		Primary:      "rose-500",
		PrimaryHover: "rose-600",
		PrimaryText:  "rose-600",
		Secondary:    "rose-100",
	}, e.Tokens(ThemeModeLight))
	assert.Equal(t, PaletteTokens{
		Primary:      "rose-400",
		PrimaryHover: "rose-300",
		PrimaryText:  "rose-400",
		Secondary:    "rose-900/30",
	}, e.Tokens(ThemeModeDark))
}

func TestThemeModeToggle(t *testing.T) {
	assert.Equal(t, ThemeModeDark, ThemeModeLight.Toggle())
	assert.Equal(t, ThemeModeLight, ThemeModeDark.Toggle())
}

func TestColorKeyCycling(t *testing.T) {
	assert.Equal(t, ColorEmerald, ColorIndigo.Next())
	assert.Equal(t, ColorIndigo, ColorCyan.Next())
	assert.Equal(t, ColorCyan, ColorIndigo.Prev())
}

func TestResolveFallsBackForUnknownColor(t *testing.T) {
	p := ThemePreference{Mode: ThemeModeDark, Color: "teal"}
	active := p.Resolve()
	assert.Equal(t, ColorIndigo, active.Key)
	assert.Equal(t, "indigo-400", active.Tokens.Primary)
}

func TestParseThemeValues(t *testing.T) {
	_, err := ParseThemeMode("dim")
	assert.Error(t, err)

	c, err := ParseColorKey("amber")
	require.NoError(t, err)
	assert.Equal(t, ColorAmber, c)

	_, err = ParseColorKey("AMBER")
	assert.Error(t, err)
}
