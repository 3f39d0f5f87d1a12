package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	// Timer
	StartStop key.Binding
	Reset     key.Binding
	NextMode  key.Binding
	Countdown key.Binding
	CountUp   key.Binding
	Copy      key.Binding

	// Theme
	ToggleTheme key.Binding
	NextColor   key.Binding
	PrevColor   key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "about")),
	StartStop:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/stop")),
	Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	NextMode:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch mode")),
	Countdown:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "countdown")),
	CountUp:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "count up")),
	Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy time")),
	ToggleTheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
	NextColor:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next color")),
	PrevColor:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev color")),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Reset, k.NextMode, k.ToggleTheme, k.NextColor, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.Reset, k.Copy},
		{k.NextMode, k.Countdown, k.CountUp},
		{k.ToggleTheme, k.NextColor, k.PrevColor},
		{k.Help, k.Quit},
	}
}
