package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

// Schema creates the tables read by the postgres data source.
//
//go:embed schema.sql
var Schema string

// ApplySchema runs Schema against db. Existing tables are left untouched.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
