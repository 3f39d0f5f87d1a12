package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/andy/dualtimer/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercisePreferenceRepo(t *testing.T, repo PreferenceRepository) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "timer-theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "timer-theme", `{"mode":"dark","color":"rose"}`))
	v, ok, err := repo.Get(ctx, "timer-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"mode":"dark","color":"rose"}`, v)

	require.NoError(t, repo.Set(ctx, "timer-theme", `{"mode":"light","color":"cyan"}`))
	v, _, err = repo.Get(ctx, "timer-theme")
	require.NoError(t, err)
	assert.Equal(t, `{"mode":"light","color":"cyan"}`, v)

	require.NoError(t, repo.Set(ctx, "other", "1"))
	require.NoError(t, repo.Clear(ctx))
	_, ok, err = repo.Get(ctx, "timer-theme")
	require.NoError(t, err)
	assert.False(t, ok)

	// clearing an empty store is fine
	require.NoError(t, repo.Clear(ctx))
}

func TestMemoryPreferenceRepo(t *testing.T) {
	exercisePreferenceRepo(t, NewMemoryPreferenceRepo())
}

func TestSQLitePreferenceRepo(t *testing.T) {
	for _, password := range []string{"", "s3cret&key"} {
		database, err := db.Open(filepath.Join(t.TempDir(), "prefs.db"), password)
		require.NoError(t, err)
		require.NoError(t, database.RunMigrations())
		exercisePreferenceRepo(t, NewPreferenceRepo(database))
		require.NoError(t, database.Close())
	}
}

func TestFilePreferenceRepo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.toml")
	exercisePreferenceRepo(t, NewFilePreferenceRepo(path))

	// values survive a fresh repo over the same file
	require.NoError(t, NewFilePreferenceRepo(path).Set(context.Background(), "timer-theme", `{"mode":"light","color":"cyan"}`))
	v, ok, err := NewFilePreferenceRepo(path).Get(context.Background(), "timer-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"mode":"light","color":"cyan"}`, v)
}

func TestFilePreferenceRepoCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is = = not toml"), 0644))

	repo := NewFilePreferenceRepo(path)
	_, _, err := repo.Get(context.Background(), "timer-theme")
	assert.Error(t, err)

	// a write replaces the damaged file
	require.NoError(t, repo.Set(context.Background(), "timer-theme", "x"))
	v, ok, err := repo.Get(context.Background(), "timer-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
