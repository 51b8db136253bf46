package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-api/internal/domain"
)

type MockMovieRepo struct {
	CountFunc     func(ctx context.Context) (int, error)
	FetchPageFunc func(ctx context.Context, offset, limit int) ([]*domain.Movie, error)
	GetByIdFunc   func(ctx context.Context, id int) (*domain.Movie, error)
}

func (m *MockMovieRepo) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}

func (m *MockMovieRepo) FetchPage(ctx context.Context, offset, limit int) ([]*domain.Movie, error) {
	return m.FetchPageFunc(ctx, offset, limit)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

// NewSliceMovieRepo serves movies from memory in slice order, the way the
// postgres repository serves them ordered by id.
func NewSliceMovieRepo(movies []*domain.Movie) *MockMovieRepo {
	return &MockMovieRepo{
		CountFunc: func(ctx context.Context) (int, error) {
			return len(movies), nil
		},
		FetchPageFunc: func(ctx context.Context, offset, limit int) ([]*domain.Movie, error) {
			if offset >= len(movies) {
				return []*domain.Movie{}, nil
			}

			end := min(offset+limit, len(movies))

			return movies[offset:end], nil
		},
		GetByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
			for _, movie := range movies {
				if movie.ID == id {
					return movie, nil
				}
			}

			return nil, domain.ErrRecordNotFound
		},
	}
}
