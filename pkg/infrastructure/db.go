package infrastructure

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewContentPool opens the connection pool for the content database and
// verifies it is reachable.
func NewContentPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
