package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/metinatakli/movie-catalog-api/internal/domain"
	"github.com/shopspring/decimal"
)

const movieColumns = `id, name, date, score, genre, overview, crew, orig_title, status, orig_lang, budget, revenue, country`

// PostgresMovieStore opens one read-only snapshot per View so the count and
// the page fetch of a request agree with each other.
type PostgresMovieStore struct {
	db TxBeginner
}

func NewPostgresMovieStore(db TxBeginner) *PostgresMovieStore {
	return &PostgresMovieStore{
		db: db,
	}
}

func (p *PostgresMovieStore) View(ctx context.Context, fn func(repo domain.MovieRepository) error) error {
	return runInTx(ctx, p.db, readOnlySnapshot, func(tx pgx.Tx) error {
		return fn(NewPostgresMovieRepository(tx))
	})
}

type PostgresMovieRepository struct {
	db DBTX
}

func NewPostgresMovieRepository(db DBTX) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT count(*) FROM movies`

	var count int

	err := p.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, wrapQueryError(ctx, err)
	}

	return count, nil
}

func (p *PostgresMovieRepository) FetchPage(ctx context.Context, offset, limit int) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapQueryError(ctx, err)
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapQueryError(ctx, err)
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		WHERE id = $1`

	movie, err := scanMovie(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, wrapQueryError(ctx, err)
	}

	return movie, nil
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var (
		movie  domain.Movie
		budget pgtype.Numeric
	)

	err := row.Scan(
		&movie.ID,
		&movie.Name,
		&movie.ReleaseDate,
		&movie.Score,
		&movie.Genre,
		&movie.Overview,
		&movie.Crew,
		&movie.OriginalTitle,
		&movie.Status,
		&movie.OriginalLanguage,
		&budget,
		&movie.Revenue,
		&movie.Country,
	)
	if err != nil {
		return nil, err
	}

	movie.Budget = toDecimal(budget)

	return &movie, nil
}

func toDecimal(numeric pgtype.Numeric) decimal.Decimal {
	if !numeric.Valid || numeric.NaN || numeric.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(numeric.Int, numeric.Exp)
}
