package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-api/internal/domain"
)

type MockMovieCache struct {
	GetFunc func(ctx context.Context, id int) (*domain.Movie, error)
	SetFunc func(ctx context.Context, movie *domain.Movie)
}

func (m *MockMovieCache) Get(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetFunc(ctx, id)
}

func (m *MockMovieCache) Set(ctx context.Context, movie *domain.Movie) {
	m.SetFunc(ctx, movie)
}
