package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/andy/dualtimer/internal/domain"
	"github.com/andy/dualtimer/internal/repository"
	"github.com/sirupsen/logrus"
)

// ThemeStorageKey is the preference slot holding the serialized theme
const ThemeStorageKey = "timer-theme"

// ModeApplier reflects the active display mode in the presentation layer
type ModeApplier interface {
	ApplyMode(mode domain.ThemeMode)
}

// ModeApplierFunc adapts a function to ModeApplier
type ModeApplierFunc func(mode domain.ThemeMode)

func (f ModeApplierFunc) ApplyMode(mode domain.ThemeMode) { f(mode) }

// ThemeService manages the persisted appearance preference
type ThemeService interface {
	// Load reads the stored preference, falling back to the default when
	// it is missing or unusable. It never fails.
	Load(ctx context.Context) domain.ThemePreference

	// Current returns the in-memory preference
	Current() domain.ThemePreference

	// Palette returns the resolved tokens for the current preference
	Palette() domain.ActivePalette

	SetMode(ctx context.Context, mode domain.ThemeMode) error
	SetColor(ctx context.Context, color domain.ColorKey) error
	ToggleMode(ctx context.Context) error

	// Reset writes the default preference back to the store
	Reset(ctx context.Context) error
}

type themeService struct {
	repo    repository.PreferenceRepository
	applier ModeApplier
	log     logrus.FieldLogger

	mu   sync.Mutex
	pref domain.ThemePreference
}

// NewThemeService creates a theme service over repo. applier may be nil.
func NewThemeService(repo repository.PreferenceRepository, applier ModeApplier, log logrus.FieldLogger) ThemeService {
	return &themeService{
		repo:    repo,
		applier: applier,
		log:     componentLogger(log, "theme"),
		pref:    domain.DefaultThemePreference(),
	}
}

func (s *themeService) Load(ctx context.Context) domain.ThemePreference {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pref = s.readLocked(ctx)
	s.apply()
	return s.pref
}

func (s *themeService) readLocked(ctx context.Context) domain.ThemePreference {
	raw, ok, err := s.repo.Get(ctx, ThemeStorageKey)
	if err != nil {
		s.log.WithError(err).Debug("theme preference unreadable, using default")
		return domain.DefaultThemePreference()
	}
	if !ok {
		return domain.DefaultThemePreference()
	}

	var pref domain.ThemePreference
	if err := json.Unmarshal([]byte(raw), &pref); err != nil {
		s.log.WithError(err).Debug("discarding malformed theme preference")
		return domain.DefaultThemePreference()
	}
	if !pref.Valid() {
		s.log.WithFields(logrus.Fields{
			"mode":  pref.Mode,
			"color": pref.Color,
		}).Debug("discarding out-of-range theme preference")
		return domain.DefaultThemePreference()
	}
	return pref
}

func (s *themeService) Current() domain.ThemePreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

func (s *themeService) Palette() domain.ActivePalette {
	return s.Current().Resolve()
}

func (s *themeService) SetMode(ctx context.Context, mode domain.ThemeMode) error {
	return s.update(ctx, func(p *domain.ThemePreference) { p.Mode = mode })
}

func (s *themeService) SetColor(ctx context.Context, color domain.ColorKey) error {
	return s.update(ctx, func(p *domain.ThemePreference) { p.Color = color })
}

func (s *themeService) ToggleMode(ctx context.Context) error {
	return s.update(ctx, func(p *domain.ThemePreference) { p.Mode = p.Mode.Toggle() })
}

func (s *themeService) Reset(ctx context.Context) error {
	return s.update(ctx, func(p *domain.ThemePreference) { *p = domain.DefaultThemePreference() })
}

// update mutates the preference, persists it and applies the mode. The
// in-memory value is kept even when the write fails.
func (s *themeService) update(ctx context.Context, mutate func(p *domain.ThemePreference)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(&s.pref)
	s.apply()

	data, err := json.Marshal(s.pref)
	if err != nil {
		return fmt.Errorf("failed to encode theme preference: %w", err)
	}
	if err := s.repo.Set(ctx, ThemeStorageKey, string(data)); err != nil {
		s.log.WithError(err).Warn("failed to persist theme preference")
		return fmt.Errorf("failed to save theme preference: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"mode":  s.pref.Mode,
		"color": s.pref.Color,
	}).Debug("theme preference saved")
	return nil
}

func (s *themeService) apply() {
	if s.applier != nil {
		s.applier.ApplyMode(s.pref.Mode)
	}
}
