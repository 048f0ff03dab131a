// Package datasource loads the inventory snapshot served by the API.
//
// Every source produces a repo.Snapshot that is validated before the server
// starts; the snapshot is never reloaded.
package datasource

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/medicine-inventory/internal/config"
	"github.com/rogerio-castellano/medicine-inventory/internal/db"
	"github.com/rogerio-castellano/medicine-inventory/internal/redissvc"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

// Load reads and validates the snapshot from the configured source.
func Load(ctx context.Context, cfg config.DataConfig, log *zap.Logger) (repo.Snapshot, error) {
	var (
		s   repo.Snapshot
		err error
	)

	switch cfg.Source {
	case config.SourceEmbedded:
		s, err = LoadEmbedded()
	case config.SourceFile:
		s, err = LoadFile(cfg.File)
	case config.SourcePostgres:
		s, err = loadFromPostgres(ctx, cfg.DatabaseURL)
	case config.SourceRedis:
		s, err = loadFromRedis(ctx, cfg)
	default:
		return repo.Snapshot{}, fmt.Errorf("unknown data source %q", cfg.Source)
	}
	if err != nil {
		return repo.Snapshot{}, fmt.Errorf("loading %s snapshot: %w", cfg.Source, err)
	}

	if err := Validate(s); err != nil {
		return repo.Snapshot{}, fmt.Errorf("invalid %s snapshot: %w", cfg.Source, err)
	}

	log.Info("inventory snapshot loaded",
		zap.String("source", cfg.Source),
		zap.Int("medicines", len(s.Medicines)),
		zap.Int("batches", len(s.Batches)),
		zap.Int("transactions", len(s.Transactions)),
	)
	return s, nil
}

func loadFromPostgres(ctx context.Context, dbUrl string) (repo.Snapshot, error) {
	database, err := db.Connect(ctx, dbUrl)
	if err != nil {
		return repo.Snapshot{}, err
	}
	defer database.Close()

	return LoadPostgres(ctx, database)
}

func loadFromRedis(ctx context.Context, cfg config.DataConfig) (repo.Snapshot, error) {
	rs, err := redissvc.Connect(ctx, &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, cfg.RedisKeyPrefix)
	if err != nil {
		return repo.Snapshot{}, err
	}
	defer rs.Close()

	return LoadRedis(ctx, rs)
}
