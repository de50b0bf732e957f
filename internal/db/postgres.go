package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodshare/internal/config/configs"
)

// NewPostgresPool opens the pool described by cfg and checks it answers
// within cfg.PingTimeout. The caller owns the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConf, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping %s: %w", poolConf.ConnConfig.Host, err)
	}
	logger.Info("postgres pool ready",
		slog.String("host", poolConf.ConnConfig.Host),
		slog.String("database", poolConf.ConnConfig.Database),
		slog.Int("max_conns", int(poolConf.MaxConns)))
	return pool, nil
}

// poolConfig parses the address and applies the pool overrides of cfg.
func poolConfig(cfg configs.Postgres) (*pgxpool.Config, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, fmt.Errorf("parse postgres address: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		if cfg.MinConns > poolConf.MaxConns {
			return nil, fmt.Errorf("min conns %d exceeds max conns %d", cfg.MinConns, poolConf.MaxConns)
		}
		poolConf.MinConns = cfg.MinConns
	}
	if cfg.MaxConnIdleTime > 0 {
		poolConf.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.AppName != "" {
		poolConf.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	return poolConf, nil
}
