package service

import (
	"context"
	"errors"
	"testing"

	"github.com/andy/dualtimer/internal/domain"
	"github.com/andy/dualtimer/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPreferenceRepo records writes and can be told to fail
type mockPreferenceRepo struct {
	values   map[string]string
	getErr   error
	setErr   error
	setCalls int
}

func newMockPreferenceRepo() *mockPreferenceRepo {
	return &mockPreferenceRepo{values: map[string]string{}}
}

func (m *mockPreferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockPreferenceRepo) Set(ctx context.Context, key, value string) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockPreferenceRepo) Clear(ctx context.Context) error {
	m.values = map[string]string{}
	return nil
}

type recordingApplier struct {
	modes []domain.ThemeMode
}

func (r *recordingApplier) ApplyMode(mode domain.ThemeMode) {
	r.modes = append(r.modes, mode)
}

func TestThemeLoadDefaults(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		setup func(*mockPreferenceRepo)
	}{
		{"missing", func(m *mockPreferenceRepo) {}},
		{"not json", func(m *mockPreferenceRepo) { m.values[ThemeStorageKey] = "{not json" }},
		{"wrong shape", func(m *mockPreferenceRepo) { m.values[ThemeStorageKey] = `[1,2,3]` }},
		{"unknown color", func(m *mockPreferenceRepo) { m.values[ThemeStorageKey] = `{"mode":"dark","color":"teal"}` }},
		{"unknown mode", func(m *mockPreferenceRepo) { m.values[ThemeStorageKey] = `{"mode":"dim","color":"rose"}` }},
		{"empty object", func(m *mockPreferenceRepo) { m.values[ThemeStorageKey] = `{}` }},
		{"read error", func(m *mockPreferenceRepo) { m.getErr = errors.New("disk on fire") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockPreferenceRepo()
			tt.setup(repo)
			svc := NewThemeService(repo, nil, nil)

			pref := svc.Load(ctx)
			assert.Equal(t, domain.ThemePreference{Mode: domain.ThemeModeLight, Color: domain.ColorIndigo}, pref)
			assert.Equal(t, 0, repo.setCalls, "load must not write")
		})
	}
}

func TestThemeColorRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryPreferenceRepo()

	svc := NewThemeService(repo, nil, nil)
	svc.Load(ctx)
	require.NoError(t, svc.SetColor(ctx, domain.ColorEmerald))

	// a fresh service over the same store simulates a reload
	reloaded := NewThemeService(repo, nil, nil).Load(ctx)
	assert.Equal(t, domain.ColorEmerald, reloaded.Color)
	assert.Equal(t, domain.ThemeModeLight, reloaded.Mode)
}

func TestThemeToggleMode(t *testing.T) {
	ctx := context.Background()
	repo := newMockPreferenceRepo()
	applier := &recordingApplier{}

	svc := NewThemeService(repo, applier, nil)
	svc.Load(ctx)

	require.NoError(t, svc.ToggleMode(ctx))
	assert.Equal(t, domain.ThemeModeDark, svc.Current().Mode)
	assert.JSONEq(t, `{"mode":"dark","color":"indigo"}`, repo.values[ThemeStorageKey])

	require.NoError(t, svc.ToggleMode(ctx))
	assert.Equal(t, domain.ThemeModeLight, svc.Current().Mode)

	assert.Equal(t, []domain.ThemeMode{
		domain.ThemeModeLight, // load
		domain.ThemeModeDark,
		domain.ThemeModeLight,
	}, applier.modes)
	assert.Equal(t, 2, repo.setCalls)
}

func TestThemeEveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	repo := newMockPreferenceRepo()
	svc := NewThemeService(repo, nil, nil)
	svc.Load(ctx)

	require.NoError(t, svc.SetMode(ctx, domain.ThemeModeDark))
	require.NoError(t, svc.SetColor(ctx, domain.ColorAmber))
	assert.Equal(t, 2, repo.setCalls)
	assert.JSONEq(t, `{"mode":"dark","color":"amber"}`, repo.values[ThemeStorageKey])

	active := svc.Palette()
	assert.Equal(t, "Amber", active.Name)
	assert.Equal(t, "amber-400", active.Tokens.Primary)

	require.NoError(t, svc.Reset(ctx))
	assert.Equal(t, domain.DefaultThemePreference(), svc.Current())
	assert.JSONEq(t, `{"mode":"light","color":"indigo"}`, repo.values[ThemeStorageKey])
}

func TestThemeLoadsStoredPreference(t *testing.T) {
	repo := newMockPreferenceRepo()
	repo.values[ThemeStorageKey] = `{"mode":"dark","color":"purple"}`
	applier := &recordingApplier{}

	pref := NewThemeService(repo, applier, nil).Load(context.Background())
	assert.Equal(t, domain.ThemePreference{Mode: domain.ThemeModeDark, Color: domain.ColorPurple}, pref)
	assert.Equal(t, []domain.ThemeMode{domain.ThemeModeDark}, applier.modes)
}

func TestThemeWriteFailureKeepsMemoryValue(t *testing.T) {
	ctx := context.Background()
	repo := newMockPreferenceRepo()
	repo.setErr = errors.New("read-only filesystem")

	svc := NewThemeService(repo, nil, nil)
	svc.Load(ctx)

	err := svc.SetColor(ctx, domain.ColorRose)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.setErr)
	assert.Equal(t, domain.ColorRose, svc.Current().Color)
}
