package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-api/internal/domain"
)

// MockMovieStore hands Repo to every View call and counts open and released
// sessions.
type MockMovieStore struct {
	Repo    domain.MovieRepository
	ViewErr error

	Opened   int
	Released int
}

func (m *MockMovieStore) View(ctx context.Context, fn func(repo domain.MovieRepository) error) error {
	if m.ViewErr != nil {
		return m.ViewErr
	}

	m.Opened++
	defer func() { m.Released++ }()

	return fn(m.Repo)
}
