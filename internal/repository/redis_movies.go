package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/movie-catalog-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

const movieCacheKeyPrefix = "movies:"

// RedisMovieCache stores single movies as JSON under "movies:<id>".
// Counts and pages are never cached.
type RedisMovieCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisMovieCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *RedisMovieCache {
	return &RedisMovieCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisMovieCache) Get(ctx context.Context, id int) (*domain.Movie, error) {
	data, err := c.client.Get(ctx, movieCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read cached movie: %w", err)
	}

	var movie domain.Movie

	err = json.Unmarshal(data, &movie)
	if err != nil {
		return nil, fmt.Errorf("decode cached movie: %w", err)
	}

	return &movie, nil
}

// Set logs write failures, the next lookup simply misses.
func (c *RedisMovieCache) Set(ctx context.Context, movie *domain.Movie) {
	data, err := json.Marshal(movie)
	if err != nil {
		c.logger.WarnContext(ctx, "movie cache encode failed", "movie_id", movie.ID, "error", err)
		return
	}

	err = c.client.Set(ctx, movieCacheKey(movie.ID), data, c.ttl).Err()
	if err != nil {
		c.logger.WarnContext(ctx, "movie cache write failed", "movie_id", movie.ID, "error", err)
	}
}

func movieCacheKey(id int) string {
	return fmt.Sprintf("%s%d", movieCacheKeyPrefix, id)
}
