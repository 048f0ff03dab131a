package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/medicine-inventory/internal/redissvc"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

// Keys read by LoadRedis, relative to the configured prefix. Each holds a
// JSON array of records.
const (
	MedicinesKey    = "medicines"
	BatchesKey      = "batches"
	TransactionsKey = "transactions"
)

// LoadRedis reads a snapshot published as three JSON arrays. A missing key
// loads as an empty collection.
func LoadRedis(ctx context.Context, rs *redissvc.RedisService) (repo.Snapshot, error) {
	var s repo.Snapshot
	if err := getJSON(ctx, rs, MedicinesKey, &s.Medicines); err != nil {
		return repo.Snapshot{}, err
	}
	if err := getJSON(ctx, rs, BatchesKey, &s.Batches); err != nil {
		return repo.Snapshot{}, err
	}
	if err := getJSON(ctx, rs, TransactionsKey, &s.Transactions); err != nil {
		return repo.Snapshot{}, err
	}
	return s, nil
}

func getJSON(ctx context.Context, rs *redissvc.RedisService, name string, dst any) error {
	raw, err := rs.Get(ctx, name)
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", rs.Key(name), err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", rs.Key(name), err)
	}
	return nil
}
