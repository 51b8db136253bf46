package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool, pgx.Tx and pgxmock.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var readOnlySnapshot = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

func runInTx(ctx context.Context, db TxBeginner, txOptions pgx.TxOptions, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return wrapQueryError(ctx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
	}()

	err = fn(tx)
	if err == nil {
		return wrapQueryError(ctx, tx.Commit(ctx))
	}

	// the request context may already be canceled, rollback must still reach the server
	rollbackErr := tx.Rollback(context.WithoutCancel(ctx))
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

// wrapQueryError marks statements cancelled on behalf of a gone caller so they
// can be told apart from real storage failures.
func wrapQueryError(ctx context.Context, err error) error {
	if err == nil || ctx.Err() == nil {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.QueryCanceled {
		return fmt.Errorf("%w: %w", ctx.Err(), err)
	}

	return err
}
