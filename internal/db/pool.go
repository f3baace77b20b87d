// Package db sets up the pgx connection pool shared by all traintrack repos.
package db

import (
	"context"
	"fmt"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool connects to the traintrack postgres instance. The service runs
// next to its database, so it connects as the postgres user without a
// password. With tracing on, every query gets its own otel span.
func NewPool(ctx context.Context, host, port, dbName string, withTracing bool) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf("postgres://postgres@%s:%s/%s", host, port, dbName)
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	if withTracing {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	return pool, nil
}
