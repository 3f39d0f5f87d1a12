package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/andy/dualtimer/internal/app"
	"github.com/andy/dualtimer/internal/clock"
	"github.com/andy/dualtimer/internal/domain"
	"github.com/andy/dualtimer/internal/repository"
	"github.com/andy/dualtimer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTestApp(t *testing.T) *repository.MemoryPreferenceRepo {
	t.Helper()
	repo := repository.NewMemoryPreferenceRepo()
	a := &app.App{
		PreferenceRepo: repo,
		TimerService:   service.NewTimerService(clock.NewFake(), nil),
		ThemeService:   service.NewThemeService(repo, nil, nil),
	}
	a.ThemeService.Load(context.Background())
	SetApp(a)
	t.Cleanup(func() { SetApp(nil) })
	return repo
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestThemeCommands(t *testing.T) {
	repo := useTestApp(t)

	out, err := runCLI(t, "theme", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Mode:  light")
	assert.Contains(t, out, "Indigo (indigo)")

	out, err = runCLI(t, "theme", "color", "amber")
	require.NoError(t, err)
	assert.Contains(t, out, "Amber (amber)")

	out, err = runCLI(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "Mode:  dark")
	assert.Contains(t, out, "amber-400")

	raw, _, _ := repo.Get(context.Background(), service.ThemeStorageKey)
	assert.JSONEq(t, `{"mode":"dark","color":"amber"}`, raw)

	_, err = runCLI(t, "theme", "reset")
	require.NoError(t, err)
	raw, _, _ = repo.Get(context.Background(), service.ThemeStorageKey)
	assert.JSONEq(t, `{"mode":"light","color":"indigo"}`, raw)
}

func TestThemeRejectsUnknownValues(t *testing.T) {
	useTestApp(t)

	_, err := runCLI(t, "theme", "color", "teal")
	assert.ErrorContains(t, err, "unknown color")

	_, err = runCLI(t, "theme", "mode", "dim")
	assert.ErrorContains(t, err, "unknown theme mode")
}

func TestThemePalette(t *testing.T) {
	useTestApp(t)

	out, err := runCLI(t, "theme", "palette")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2+12)
	assert.Contains(t, out, "cyan-900/30")
	// the active entry is marked
	assert.Contains(t, out, "* indigo   Indigo   light")
}

func TestRunTimerCountdownFinishes(t *testing.T) {
	fake := clock.NewFake()
	timer := service.NewTimerService(fake, nil)
	defer timer.Close()

	var out bytes.Buffer
	result := make(chan domain.TimerSnapshot, 1)
	go func() {
		result <- runTimer(context.Background(), timer, domain.TimerModeCountdown, &out)
	}()

	// wait for the timer to be running before driving the clock
	require.Eventually(t, func() bool { return timer.State() == domain.TimerStateRunning }, time.Second, time.Millisecond)
	fake.Advance(time.Duration(domain.CountdownDuration)*time.Second + domain.AutoResetDelay)

	select {
	case final := <-result:
		assert.Equal(t, domain.TimerStateStopped, final.State)
		assert.Equal(t, domain.CountdownDuration, final.CountdownRemaining)
	case <-time.After(2 * time.Second):
		t.Fatal("countdown never finished")
	}
	assert.Contains(t, out.String(), "00:00")
}

func TestRunTimerStopsOnCancel(t *testing.T) {
	fake := clock.NewFake()
	timer := service.NewTimerService(fake, nil)
	defer timer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	result := make(chan domain.TimerSnapshot, 1)
	go func() {
		result <- runTimer(ctx, timer, domain.TimerModeCountUp, &out)
	}()

	require.Eventually(t, func() bool { return timer.State() == domain.TimerStateRunning }, time.Second, time.Millisecond)
	fake.Advance(65 * time.Second)
	cancel()

	final := <-result
	assert.Equal(t, domain.TimerStatePaused, final.State)
	assert.Equal(t, 65, final.CountUpElapsed)
	assert.Contains(t, out.String(), "00:01:05")
}

func TestResetClearsPreferences(t *testing.T) {
	repo := useTestApp(t)
	_, err := runCLI(t, "theme", "color", "rose")
	require.NoError(t, err)

	rootCmd.SetIn(strings.NewReader("n\n"))
	out, err := runCLI(t, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	_, ok, _ := repo.Get(context.Background(), service.ThemeStorageKey)
	assert.True(t, ok)

	rootCmd.SetIn(strings.NewReader("y\n"))
	out, err = runCLI(t, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")
	_, ok, _ = repo.Get(context.Background(), service.ThemeStorageKey)
	assert.False(t, ok)
	assert.Equal(t, domain.DefaultThemePreference(), appInstance.ThemeService.Current())
}

func TestHelpDoesNotBuildApp(t *testing.T) {
	SetApp(nil)
	out, err := runCLI(t, "help", "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "palette")
	assert.Nil(t, appInstance)
}
