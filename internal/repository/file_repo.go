package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// FilePreferenceRepo stores preferences as a flat TOML table on disk.
// The whole file is rewritten on every Set.
type FilePreferenceRepo struct {
	path string
	mu   sync.Mutex
}

// NewFilePreferenceRepo creates a repo backed by the TOML file at path.
// The file is created on the first Set.
func NewFilePreferenceRepo(path string) *FilePreferenceRepo {
	return &FilePreferenceRepo{path: path}
}

func (r *FilePreferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (r *FilePreferenceRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		// An unreadable file is replaced rather than blocking every write
		values = map[string]string{}
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	tmp := r.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(values); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace preferences file: %w", err)
	}
	return nil
}

// Clear removes the preferences file
func (r *FilePreferenceRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove preferences file: %w", err)
	}
	return nil
}

func (r *FilePreferenceRepo) read() (map[string]string, error) {
	values := map[string]string{}
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return values, nil
	}
	if _, err := toml.DecodeFile(r.path, &values); err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}
	return values, nil
}
