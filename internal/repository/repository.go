package repository

import "context"

// PreferenceRepository is a string key-value store for user preferences.
// Get returns ok=false when the key has never been written.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Clear removes every stored preference
	Clear(ctx context.Context) error
}
