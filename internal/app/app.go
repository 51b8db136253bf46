package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-api/api"
	"github.com/metinatakli/movie-catalog-api/internal/repository"
	"github.com/metinatakli/movie-catalog-api/internal/service"
	appvalidator "github.com/metinatakli/movie-catalog-api/internal/validator"
	"github.com/metinatakli/movie-catalog-api/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const (
	serviceName = "movie-catalog-api"

	// APIBasePath prefixes every route of the API.
	APIBasePath = "/api/v1/theater"
	// MoviesBasePath is the list endpoint, navigation links point here.
	MoviesBasePath = APIBasePath + "/movies/"
)

var (
	version = vcs.Version()
)

type Application struct {
	config       Config
	logger       *slog.Logger
	validator    *validator.Validate
	movieService *service.MovieService
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	OtelCollectorUrl string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
	CacheTTL     time.Duration
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	movieService *service.MovieService) *Application {

	return &Application{
		config:       cfg,
		logger:       logger,
		validator:    validator,
		movieService: movieService,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL (redis://[user:pass@]host:port/db), enables the movie cache when set")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")
	flag.DurationVar(&cfg.Redis.CacheTTL, "redis-cache-ttl", 5*time.Minute, "Time to live of cached movies")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := NewApp(cfg, logger, appvalidator.NewValidator(), nil)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []service.Option

	if cfg.Redis.URL != "" {
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		opts = append(opts, service.WithCache(repository.NewRedisMovieCache(redisClient, cfg.Redis.CacheTTL, app.logger)))
	}

	app.movieService = service.NewMovieService(repository.NewPostgresMovieStore(db), MoviesBasePath, app.logger, opts...)

	return app.serve()
}

// redisOptions parses a redis:// or rediss:// URL and applies the pool limits.
func redisOptions(cfg RedisConfig) (*redis.Options, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.MaxIdleConns = cfg.MaxIdleConns
	opts.MaxActiveConns = cfg.MaxOpenConns
	opts.ConnMaxIdleTime = cfg.MaxIdleTime

	return opts, nil
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	opts, err := redisOptions(cfg.Redis)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	err = errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)

	r.Get(APIBasePath+"/openapi.json", app.GetOpenAPISpec)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseURL:          APIBasePath,
		BaseRouter:       r,
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}
