package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-api/internal/app"
	"github.com/metinatakli/movie-catalog-api/internal/repository"
	"github.com/metinatakli/movie-catalog-api/internal/service"
	appvalidator "github.com/metinatakli/movie-catalog-api/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App   *app.Application
	DB    *pgxpool.Pool
	Cache *redis.Client
}

func (a *TestApp) Close() {
	a.Cache.Close()
	a.DB.Close()
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	movieService := service.NewMovieService(
		repository.NewPostgresMovieStore(db),
		app.MoviesBasePath,
		logger,
		service.WithCache(repository.NewRedisMovieCache(redisClient, cfg.Redis.CacheTTL, logger)),
	)

	return &TestApp{
		App:   app.NewApp(cfg, logger, validator, movieService),
		DB:    db,
		Cache: redisClient,
	}, nil
}
