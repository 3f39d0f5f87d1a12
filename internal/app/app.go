package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andy/dualtimer/internal/clock"
	"github.com/andy/dualtimer/internal/config"
	"github.com/andy/dualtimer/internal/crypto"
	"github.com/andy/dualtimer/internal/db"
	"github.com/andy/dualtimer/internal/domain"
	"github.com/andy/dualtimer/internal/logging"
	"github.com/andy/dualtimer/internal/repository"
	"github.com/andy/dualtimer/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Log    *logrus.Logger
	DB     *db.DB // nil unless the sqlite backend is configured

	// Repositories
	PreferenceRepo repository.PreferenceRepository

	// Services
	TimerService service.TimerService
	ThemeService service.ThemeService

	logCloser io.Closer
}

// Options carries command-line overrides
type Options struct {
	ConfigPath string
	Debug      bool
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Opening the log file
// 3. Opening the preference store (and its encryption key)
// 4. Creating services and loading the saved theme
func New(ctx context.Context, opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg, opts.Debug)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config, debug bool) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	log, logCloser, err := logging.New(cfg.Log, debug)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	a := &App{
		Config:    cfg,
		Log:       log,
		logCloser: logCloser,
	}

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		database, err := openDatabase(cfg.Storage)
		if err != nil {
			logCloser.Close()
			return nil, err
		}
		a.DB = database
		a.PreferenceRepo = repository.NewPreferenceRepo(database)
	case config.BackendFile:
		a.PreferenceRepo = repository.NewFilePreferenceRepo(cfg.Storage.FilePath)
	default:
		a.PreferenceRepo = repository.NewMemoryPreferenceRepo()
	}

	a.TimerService = service.NewTimerService(clock.Real(), log)
	a.ThemeService = service.NewThemeService(a.PreferenceRepo, TerminalModeApplier(), log)

	pref := a.ThemeService.Load(ctx)
	log.WithFields(logrus.Fields{
		"backend": cfg.Storage.Backend,
		"mode":    pref.Mode,
		"color":   pref.Color,
	}).Info("dualtimer started")

	return a, nil
}

// TerminalModeApplier keeps lipgloss' background flag in step with the
// theme so adaptive colors pick the matching variant
func TerminalModeApplier() service.ModeApplier {
	return service.ModeApplierFunc(func(mode domain.ThemeMode) {
		lipgloss.SetHasDarkBackground(mode == domain.ThemeModeDark)
	})
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.TimerService != nil {
		a.TimerService.Close()
	}

	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

// openDatabase opens the sqlite preference store, encrypted when configured
func openDatabase(cfg config.StorageConfig) (*db.DB, error) {
	password := ""
	if cfg.Encrypt {
		key, err := databaseKey()
		if err != nil {
			return nil, err
		}
		password = key
	}

	database, err := db.Open(cfg.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations to ensure schema is up to date
	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// databaseKey returns the stored encryption key, prompting for a new one
// on first run
func databaseKey() (string, error) {
	keyring := crypto.NewKeyring()

	password, err := keyring.GetKey()
	if err == nil {
		return password, nil
	}
	if !errors.Is(err, crypto.ErrKeyNotFound) {
		return "", err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !keyring.IsAvailable() {
		return "", fmt.Errorf("no database key: set %s or storage.encrypt: false in the config", crypto.EnvKey)
	}

	fmt.Println("Setting up preference encryption for the first time...")
	password, err = promptForPassword()
	if err != nil {
		return "", fmt.Errorf("failed to set password: %w", err)
	}

	if err := keyring.SetKey(password); err != nil {
		return "", fmt.Errorf("failed to store encryption key: %w", err)
	}
	return password, nil
}

// promptForPassword prompts user for a new database password (first run)
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your saved preferences will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Encryption configured")
	fmt.Println()

	return string(password), nil
}
