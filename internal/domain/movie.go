package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID               int
	Name             string
	ReleaseDate      time.Time
	Score            float64
	Genre            string
	Overview         string
	Crew             string
	OriginalTitle    string
	Status           string
	OriginalLanguage string
	Budget           decimal.Decimal
	Revenue          int64
	Country          string
}

// MovieRepository reads movie records in a stable order (ascending ID).
type MovieRepository interface {
	Count(ctx context.Context) (int, error)
	FetchPage(ctx context.Context, offset, limit int) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}

// MovieStore scopes repository access to a single read-only session.
// The session is released when fn returns, whatever the outcome.
type MovieStore interface {
	View(ctx context.Context, fn func(repo MovieRepository) error) error
}

// MovieCache keeps single movies outside the store. Get reports an absent
// entry with ErrCacheMiss. Set never fails the caller.
type MovieCache interface {
	Get(ctx context.Context, id int) (*Movie, error)
	Set(ctx context.Context, movie *Movie)
}
