package handlers_integrated_test_suite

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/medicine-inventory/internal/config"
	"github.com/rogerio-castellano/medicine-inventory/internal/datasource"
	"github.com/rogerio-castellano/medicine-inventory/internal/db"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/handlers"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/router"
	"github.com/rogerio-castellano/medicine-inventory/internal/redissvc"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

const testKeyPrefix = "medicine-inventory-test"

// connectDatabase skips the test unless DATABASE_URL points at a reachable
// postgres instance.
func connectDatabase(t *testing.T) *sql.DB {
	t.Helper()
	dbUrl := os.Getenv("DATABASE_URL")
	if dbUrl == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, dbUrl)
	if err != nil {
		t.Fatalf("❌ Could not connect to database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.ApplySchema(ctx, database); err != nil {
		t.Fatal(err)
	}
	truncateAll(t, database)
	t.Cleanup(func() { truncateAll(t, database) })
	return database
}

func truncateAll(t *testing.T, database *sql.DB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "TRUNCATE TABLE transactions, batches, medicines RESTART IDENTITY")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// connectRedis skips the test unless REDIS_ADDR points at a reachable redis.
func connectRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Fatalf("Could not connect to Redis: %v", err)
	}

	rs := redissvc.NewRedisService(rdb, testKeyPrefix)
	removeKeys := func() {
		rdb.Del(context.Background(),
			rs.Key(datasource.MedicinesKey),
			rs.Key(datasource.BatchesKey),
			rs.Key(datasource.TransactionsKey),
		)
	}
	removeKeys()
	t.Cleanup(func() {
		removeKeys()
		rs.Close()
	})
	return rdb
}

// loadRouter loads the snapshot through the public data source entry point
// and serves it the same way the binary does.
func loadRouter(t *testing.T, cfg config.DataConfig) http.Handler {
	t.Helper()
	snapshot, err := datasource.Load(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("could not load snapshot: %v", err)
	}
	server := handlers.NewServer(repo.NewInMemoryRepositories(snapshot), zap.NewNop(),
		handlers.WithClock(func() time.Time { return fixedNow }))
	return router.NewRouter(server, zap.NewNop(), router.Options{})
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}
