package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of pgxpool.Pool the binaries need for lifecycle
// management. Code that actually runs queries takes the concrete
// *pgxpool.Pool instead.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool opens a PostgreSQL connection pool and verifies the database
// answers before returning it. The ping is bounded by
// DefaultConnectTimeout so callers that treat the database as optional
// can fall back quickly.
func NewPool(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	poolCfg.MaxConns = int32(maxConns)
	poolCfg.MinConns = DefaultMinConnections
	poolCfg.MaxConnIdleTime = maxIdle
	poolCfg.MaxConnLifetime = maxLife
	poolCfg.HealthCheckPeriod = DefaultHealthCheckPeriod

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf(ErrMsgPingDatabase, DefaultConnectTimeout, err)
	}

	slog.Default().Info(LogMsgDatabaseConnected, "max_conns", poolCfg.MaxConns)
	return pool, nil
}
