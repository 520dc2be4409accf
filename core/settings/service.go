// ABOUTME: Typed access to the persisted key-value settings schema
// ABOUTME: Wraps the raw Store with defaults and validation per key

package settings

import (
	"context"
	"errors"

	"clipper-app-api/core/domain"
	coreerrors "clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
)

// Service reads and writes the persisted settings. Reads of absent keys
// return zero values or documented defaults rather than errors; storage
// failures are surfaced as-is.
type Service struct {
	store interfaces.Store
}

// NewService creates a settings service over the given store.
func NewService(store interfaces.Store) *Service {
	return &Service{store: store}
}

// ServerURL returns the saved server origin, or empty when never connected.
func (s *Service) ServerURL(ctx context.Context) (string, error) {
	return s.get(ctx, domain.KeyServerURL)
}

// SetServerURL persists the normalized server origin.
func (s *Service) SetServerURL(ctx context.Context, origin string) error {
	return s.store.Set(ctx, domain.KeyServerURL, origin)
}

// LastSpaceID returns the id of the space last clipped into, or empty.
func (s *Service) LastSpaceID(ctx context.Context) (string, error) {
	return s.get(ctx, domain.KeyLastSpaceID)
}

// SetLastSpaceID persists the space id used for the most recent clip.
func (s *Service) SetLastSpaceID(ctx context.Context, id string) error {
	return s.store.Set(ctx, domain.KeyLastSpaceID, id)
}

// ClearLastSpaceID removes the remembered space selection.
func (s *Service) ClearLastSpaceID(ctx context.Context) error {
	return s.store.Delete(ctx, domain.KeyLastSpaceID)
}

// Theme returns the saved theme preference, defaulting to auto.
func (s *Service) Theme(ctx context.Context) (domain.Theme, error) {
	raw, err := s.get(ctx, domain.KeyTheme)
	if err != nil {
		return domain.ThemeAuto, err
	}
	return domain.ParseTheme(raw), nil
}

// SetTheme persists a theme preference after validating it.
func (s *Service) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return &coreerrors.ValidationError{Field: "theme", Message: "must be auto, light, or dark"}
	}
	return s.store.Set(ctx, domain.KeyTheme, string(theme))
}

// get maps the store's not-found to an empty string.
func (s *Service) get(ctx context.Context, key string) (string, error) {
	value, err := s.store.Get(ctx, key)
	if errors.Is(err, interfaces.ErrNotFound) {
		return "", nil
	}
	return value, err
}
