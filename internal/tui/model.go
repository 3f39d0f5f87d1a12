package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/dualtimer/internal/app"
	"github.com/andy/dualtimer/internal/domain"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 36

// Model is the root Bubble Tea model: one timer card plus theme controls
type Model struct {
	app    *app.App
	width  int
	height int

	snap domain.TimerSnapshot
	pref domain.ThemePreference

	// updates receives a coalesced signal whenever the engine publishes
	updates     chan struct{}
	unsubscribe func()

	help     help.Model
	progress progress.Model

	showAbout bool
	about     string
	aboutMode domain.ThemeMode

	err       error
	statusMsg string
}

// New creates a new root model subscribed to the app's timer
func New(a *app.App) *Model {
	m := &Model{
		app:     a,
		snap:    a.TimerService.Snapshot(),
		pref:    a.ThemeService.Current(),
		updates: make(chan struct{}, 1),
		help:    help.New(),
		progress: progress.New(
			progress.WithoutPercentage(),
			progress.WithWidth(progressWidth),
		),
	}

	m.unsubscribe = a.TimerService.Subscribe(func(domain.TimerSnapshot) {
		select {
		case m.updates <- struct{}{}:
		default:
			// a signal is already pending; the reader re-reads the latest snapshot
		}
	})
	return m
}

// waitForSnapshot blocks until the engine publishes, then reads its state
func (m *Model) waitForSnapshot() tea.Cmd {
	updates := m.updates
	timer := m.app.TimerService
	return func() tea.Msg {
		<-updates
		return snapshotMsg{snap: timer.Snapshot()}
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.waitForSnapshot()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.about = ""
		return m, nil

	case snapshotMsg:
		m.snap = msg.snap
		return m, m.waitForSnapshot()

	case copiedMsg:
		m.statusMsg = fmt.Sprintf("Copied %s", msg.text)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.statusMsg = ""

	if m.showAbout {
		// any key dismisses the about panel; q still quits
		m.showAbout = false
		if !key.Matches(msg, DefaultKeyMap.Quit) {
			return m, nil
		}
	}

	timer := m.app.TimerService
	switch {
	case key.Matches(msg, DefaultKeyMap.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, DefaultKeyMap.Help):
		m.showAbout = true

	case key.Matches(msg, DefaultKeyMap.StartStop):
		if m.snap.State == domain.TimerStateRunning {
			timer.Stop()
		} else {
			timer.Start()
		}

	case key.Matches(msg, DefaultKeyMap.Reset):
		timer.Reset()

	case key.Matches(msg, DefaultKeyMap.NextMode):
		if m.snap.Mode == domain.TimerModeCountdown {
			timer.SwitchMode(domain.TimerModeCountUp)
		} else {
			timer.SwitchMode(domain.TimerModeCountdown)
		}

	case key.Matches(msg, DefaultKeyMap.Countdown):
		timer.SwitchMode(domain.TimerModeCountdown)

	case key.Matches(msg, DefaultKeyMap.CountUp):
		timer.SwitchMode(domain.TimerModeCountUp)

	case key.Matches(msg, DefaultKeyMap.Copy):
		return m, copyTime(m.snap.Display())

	case key.Matches(msg, DefaultKeyMap.ToggleTheme):
		m.setTheme(m.app.ThemeService.ToggleMode)

	case key.Matches(msg, DefaultKeyMap.NextColor):
		next := m.pref.Color.Next()
		m.setTheme(func(ctx context.Context) error { return m.app.ThemeService.SetColor(ctx, next) })

	case key.Matches(msg, DefaultKeyMap.PrevColor):
		prev := m.pref.Color.Prev()
		m.setTheme(func(ctx context.Context) error { return m.app.ThemeService.SetColor(ctx, prev) })
	}

	// Commands take effect synchronously; the pending notification will
	// deliver the same state again
	m.snap = timer.Snapshot()
	return m, nil
}

// setTheme runs a theme mutation and refreshes the cached preference. The
// new look applies even if saving failed.
func (m *Model) setTheme(mutate func(ctx context.Context) error) {
	if err := mutate(context.Background()); err != nil {
		m.err = err
	}
	m.pref = m.app.ThemeService.Current()
}

// shutdown detaches from the engine and cancels its tick source
func (m *Model) shutdown() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.app.TimerService.Close()
}

func copyTime(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to copy time: %w", err)}
		}
		return copiedMsg{text: text}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	palette := m.pref.Resolve()
	styles := newThemeStyles(palette)

	var body string
	if m.showAbout {
		body = m.aboutView(palette.Mode)
	} else {
		body = m.timerView(styles)
	}

	card := styles.frame.Render(body)
	footer := m.help.View(DefaultKeyMap)
	content := lipgloss.JoinVertical(lipgloss.Center, card, "", footer)

	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) timerView(styles themeStyles) string {
	snap := m.snap
	var b strings.Builder

	// Mode selector
	countdownTab, countUpTab := styles.tabIdle, styles.tabIdle
	if snap.Mode == domain.TimerModeCountdown {
		countdownTab = styles.tabActive
	} else {
		countUpTab = styles.tabActive
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		countdownTab.Render(domain.TimerModeCountdown.Label()),
		countUpTab.Render(domain.TimerModeCountUp.Label()),
	)
	b.WriteString(tabs + "\n\n")

	// Clock face
	clock := snap.Display()
	face := styles.clock.Render(bigClock(clock))
	b.WriteString(lipgloss.PlaceHorizontal(lipgloss.Width(tabs), lipgloss.Center, face) + "\n")
	b.WriteString(lipgloss.PlaceHorizontal(lipgloss.Width(tabs), lipgloss.Center,
		subtitleStyle.Render(clock+"  ·  "+snap.Mode.Label())) + "\n\n")

	// Progress
	m.progress.FullColor = styles.barFull
	m.progress.EmptyColor = emptyBar.Dark
	if !lipgloss.HasDarkBackground() {
		m.progress.EmptyColor = emptyBar.Light
	}
	b.WriteString(m.progress.ViewAs(snap.ProgressFraction()) + "\n\n")

	// Status indicator
	dot := lipgloss.NewStyle().Foreground(stateColor(snap.State)).Render("●")
	b.WriteString(dot + " " + textStyle.Render(snap.State.Label()) + "\n\n")

	// Controls
	action := "Start"
	switch snap.State {
	case domain.TimerStateRunning:
		action = "Stop"
	case domain.TimerStatePaused:
		action = "Continue"
	}
	b.WriteString(styles.button.Render("space "+action) + "  " + subtitleStyle.Render("r Reset") + "\n\n")
	b.WriteString(subtitleStyle.Render(modeDescription(snap.Mode == domain.TimerModeCountUp)) + "\n\n")

	b.WriteString(m.paletteStrip(styles))

	if m.statusMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(successColor).Render(m.statusMsg))
	}
	if m.err != nil {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(errorColor).Render("Error: "+m.err.Error()))
	}
	return b.String()
}

// paletteStrip lists the accent colors with the active one marked
func (m *Model) paletteStrip(styles themeStyles) string {
	parts := make([]string, 0, len(domain.ColorKeys())+1)
	for _, c := range domain.ColorKeys() {
		entry, _ := domain.LookupPalette(c)
		if c == m.pref.Color {
			parts = append(parts, styles.swatch.Render("● "+entry.Name))
			continue
		}
		tokens := entry.Tokens(m.pref.Mode)
		parts = append(parts, lipgloss.NewStyle().Foreground(tokenColor(tokens.Primary)).Render("○")+" "+entry.Name)
	}
	parts = append(parts, subtitleStyle.Render(string(m.pref.Mode)))
	return strings.Join(parts, "  ")
}

func (m *Model) aboutView(mode domain.ThemeMode) string {
	if m.about == "" || m.aboutMode != mode {
		width := m.width - 10
		if width <= 0 || width > 72 {
			width = 72
		}
		m.about = renderAbout(mode, width)
		m.aboutMode = mode
	}
	return m.about
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
