package tui

import (
	"github.com/andy/dualtimer/internal/domain"
	"github.com/charmbracelet/glamour"
)

const aboutMarkdown = `# dualtimer

Two timers in one window.

* **Countdown** runs 25 minutes and resets itself when it reaches zero.
* **Count Up** runs up to 24 hours and holds there.

Switching modes always stops and resets the timer.

| Key | Action |
|-----|--------|
| space / enter | start, continue or stop |
| r | reset |
| tab, c, u | switch mode |
| t | light / dark |
| [ ] | accent color |
| y | copy the time |
| q | quit |

Your theme is saved between sessions.
`

// renderAbout renders the about panel in the glamour style matching the
// display mode, falling back to the raw markdown
func renderAbout(mode domain.ThemeMode, width int) string {
	style := "light"
	if mode == domain.ThemeModeDark {
		style = "dark"
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return aboutMarkdown
	}
	out, err := r.Render(aboutMarkdown)
	if err != nil {
		return aboutMarkdown
	}
	return out
}
