// Package service holds the read-side logic of the movie catalog: page
// arithmetic, page-bound checks and navigation links.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/movie-catalog-api/internal/domain"
)

type MovieService struct {
	store    domain.MovieStore
	cache    domain.MovieCache
	basePath string
	logger   *slog.Logger
}

type Option func(*MovieService)

// WithCache serves GetById from cache before any store session is opened.
func WithCache(cache domain.MovieCache) Option {
	return func(s *MovieService) {
		s.cache = cache
	}
}

// NewMovieService returns a service whose navigation links point at basePath.
func NewMovieService(store domain.MovieStore, basePath string, logger *slog.Logger, opts ...Option) *MovieService {
	s := &MovieService{
		store:    store,
		basePath: basePath,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListPage returns the requested page of movies. page and perPage must already
// be validated (page >= 1, perPage > 0).
func (s *MovieService) ListPage(ctx context.Context, page, perPage int) (*domain.MoviePage, error) {
	pagination := domain.NewPagination(page, perPage)

	var result *domain.MoviePage

	err := s.store.View(ctx, func(repo domain.MovieRepository) error {
		totalItems, err := repo.Count(ctx)
		if err != nil {
			return err
		}

		if totalItems == 0 {
			return domain.ErrNoMovies
		}

		totalPages := pagination.TotalPages(totalItems)
		if pagination.Page > totalPages {
			s.logger.DebugContext(ctx, "requested page out of range",
				"page", pagination.Page, "per_page", pagination.PageSize, "total_pages", totalPages)

			return domain.ErrPageOutOfRange
		}

		movies, err := repo.FetchPage(ctx, pagination.Offset(), pagination.Limit())
		if err != nil {
			return err
		}

		result = &domain.MoviePage{
			Movies:     movies,
			TotalPages: totalPages,
			TotalItems: totalItems,
		}

		if pagination.HasPrev() {
			result.PrevPage = s.pageLink(pagination.Page-1, pagination.PageSize)
		}

		if pagination.HasNext(totalPages) {
			result.NextPage = s.pageLink(pagination.Page+1, pagination.PageSize)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *MovieService) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	if s.cache != nil {
		movie, err := s.cache.Get(ctx, id)
		if err == nil {
			return movie, nil
		}

		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "movie cache read failed", "movie_id", id, "error", err)
		}
	}

	var movie *domain.Movie

	err := s.store.View(ctx, func(repo domain.MovieRepository) error {
		var err error

		movie, err = repo.GetById(ctx, id)
		if err != nil {
			return err
		}

		if movie == nil {
			return domain.ErrRecordNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, movie)
	}

	return movie, nil
}

func (s *MovieService) pageLink(page, perPage int) *string {
	link := fmt.Sprintf("%s?page=%d&per_page=%d", s.basePath, page, perPage)
	return &link
}
