// Package xpgx adds squirrel aware helpers on top of pgxpool.
package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	*pgxpool.Pool
}

// Connect opens a pool and pings it, retrying with a constant backoff while
// the database is still coming up.
func Connect(ctx context.Context, dsn string, retries uint64) (*Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	var pool *pgxpool.Pool
	err = backoff.Retry(
		func() error {
			p, err := pgxpool.NewWithConfig(ctx, cfg)
			if err != nil {
				return err
			}
			if err := p.Ping(ctx); err != nil {
				p.Close()
				return err
			}
			pool = p
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), retries),
			ctx,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

func (p *Pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("ToSql: %w", err)
	}
	return p.Exec(ctx, sql, args...)
}

func (p *Pool) Queryx(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}
	return p.Query(ctx, sql, args...)
}

// Selectx scans every row into a T by column name.
func Selectx[T any](ctx context.Context, p *Pool, query sq.Sqlizer) ([]*T, error) {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
}

// Scalar reads a single column of a single row.
func Scalar[T any](ctx context.Context, p *Pool, query sq.Sqlizer) (T, error) {
	var zero T
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowTo[T])
}
