package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backends for the theme preference
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

type Config struct {
	// Preference storage settings
	Storage StorageConfig `yaml:"storage"`

	// Log settings
	Log LogConfig `yaml:"log"`
}

type StorageConfig struct {
	Backend  string `yaml:"backend"`   // sqlite, file or memory
	Path     string `yaml:"path"`      // SQLite database path
	FilePath string `yaml:"file_path"` // TOML preferences file (file backend)
	Encrypt  bool   `yaml:"encrypt"`   // Encrypt the SQLite database with a keyring-held key
}

type LogConfig struct {
	Path  string `yaml:"path"`  // Log file; empty disables logging
	Level string `yaml:"level"` // logrus level name
}

// configDir returns ~/.config/dualtimer, or a relative fallback
func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "dualtimer")
	}
	return filepath.Join(homeDir, ".config", "dualtimer")
}

// DefaultConfigPath returns ~/.config/dualtimer/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	dir := configDir()
	return &Config{
		Storage: StorageConfig{
			Backend:  BackendSQLite,
			Path:     filepath.Join(dir, "dualtimer.db"),
			FilePath: filepath.Join(dir, "preferences.toml"),
			Encrypt:  true,
		},
		Log: LogConfig{
			Path:  filepath.Join(dir, "dualtimer.log"),
			Level: "info",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML over the defaults so omitted keys keep their default
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Validate checks values that have a fixed set of choices
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q (want sqlite, file or memory)", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for the sqlite backend")
	}
	if c.Storage.Backend == BackendFile && c.Storage.FilePath == "" {
		return fmt.Errorf("storage.file_path is required for the file backend")
	}
	return nil
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the directories the configured backend and log need
func (c *Config) EnsureDirectories() error {
	var dirs []string
	switch c.Storage.Backend {
	case BackendSQLite:
		dirs = append(dirs, filepath.Dir(c.Storage.Path))
	case BackendFile:
		dirs = append(dirs, filepath.Dir(c.Storage.FilePath))
	}
	if c.Log.Path != "" {
		dirs = append(dirs, filepath.Dir(c.Log.Path))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
