package controller

import (
	"context"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/settings"
)

// mockAPI is a scriptable implementation of the API interface
type mockAPI struct {
	loginFunc  func(ctx context.Context, origin, email, password string) error
	listFunc   func(ctx context.Context, origin string) ([]domain.Space, error)
	createFunc func(ctx context.Context, origin, name, slug string) (*domain.Space, error)
	importFunc func(ctx context.Context, origin, spaceID, filename string, document []byte) error

	loginCalls  int
	listCalls   int
	createCalls int
	importCalls int
}

func (m *mockAPI) Login(ctx context.Context, origin, email, password string) error {
	m.loginCalls++
	if m.loginFunc != nil {
		return m.loginFunc(ctx, origin, email, password)
	}
	return nil
}

func (m *mockAPI) ListSpaces(ctx context.Context, origin string) ([]domain.Space, error) {
	m.listCalls++
	if m.listFunc != nil {
		return m.listFunc(ctx, origin)
	}
	return []domain.Space{}, nil
}

func (m *mockAPI) CreateSpace(ctx context.Context, origin, name, slug string) (*domain.Space, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, origin, name, slug)
	}
	return &domain.Space{ID: "created", Name: name, Slug: slug}, nil
}

func (m *mockAPI) ImportPage(ctx context.Context, origin, spaceID, filename string, document []byte) error {
	m.importCalls++
	if m.importFunc != nil {
		return m.importFunc(ctx, origin, spaceID, filename, document)
	}
	return nil
}

// mockContent is a stub implementation of the ContentSource interface
type mockContent struct {
	snapshot *domain.ContentSnapshot
	err      error
	calls    int
}

func (m *mockContent) RequestContent(ctx context.Context) (*domain.ContentSnapshot, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.snapshot != nil {
		return m.snapshot, nil
	}
	return &domain.ContentSnapshot{
		Title:       "Captured Page",
		ContentHTML: "<p>captured</p>",
		SourceURL:   "https://page.example.com/a",
	}, nil
}

// mapStore is a minimal in-memory Store for tests
type mapStore struct {
	values map[string]string
}

func newMapStore() *mapStore {
	return &mapStore{values: map[string]string{}}
}

func (m *mapStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", interfaces.ErrNotFound
	}
	return v, nil
}

func (m *mapStore) Set(ctx context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *mapStore) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func newTestController(api *mockAPI, content *mockContent, store *mapStore) *Controller {
	return New(api, content, settings.NewService(store), nil)
}
