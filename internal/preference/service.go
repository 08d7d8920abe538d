package preference

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
)

// Common errors
var (
	ErrUnknownTheme = errors.New("theme must be dark or light")
)

// Store is the key-value persistence the service needs
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Service handles the display preference
type Service struct {
	store       Store
	defaultDark bool
}

// NewService creates a new preference service. defaultDark is used until a
// theme has been saved.
func NewService(store Store, defaultDark bool) *Service {
	return &Service{store: store, defaultDark: defaultDark}
}

// DarkMode returns the saved preference, or the default when none is stored
// or the stored value is unreadable.
func (s *Service) DarkMode(ctx context.Context) (bool, error) {
	value, ok, err := s.store.Get(ctx, KeyDarkMode)
	if err != nil {
		return false, err
	}
	if !ok {
		return s.defaultDark, nil
	}

	dark, err := strconv.ParseBool(value)
	if err != nil {
		slog.WarnContext(ctx, "Ignoring unreadable theme preference", "value", value)
		return s.defaultDark, nil
	}
	return dark, nil
}

// Theme returns the current theme
func (s *Service) Theme(ctx context.Context) (Theme, error) {
	dark, err := s.DarkMode(ctx)
	if err != nil {
		return "", err
	}
	return ThemeFor(dark), nil
}

// SetDarkMode saves the preference
func (s *Service) SetDarkMode(ctx context.Context, dark bool) error {
	if err := s.store.Set(ctx, KeyDarkMode, strconv.FormatBool(dark)); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Theme preference saved", "theme", ThemeFor(dark))
	return nil
}

// Toggle flips the preference and returns the new value
func (s *Service) Toggle(ctx context.Context) (bool, error) {
	dark, err := s.DarkMode(ctx)
	if err != nil {
		return false, err
	}
	if err := s.SetDarkMode(ctx, !dark); err != nil {
		return false, err
	}
	return !dark, nil
}

// Reset forgets the saved preference and returns the default now in effect
func (s *Service) Reset(ctx context.Context) (bool, error) {
	if err := s.store.Delete(ctx, KeyDarkMode); err != nil {
		return false, err
	}
	slog.InfoContext(ctx, "Theme preference reset", "theme", ThemeFor(s.defaultDark))
	return s.defaultDark, nil
}
