package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/medicine-inventory/internal/models"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

const (
	medicinesQuery = `SELECT medicine_id, name, category, status, reorder_level,
		COALESCE(unit, ''), COALESCE(manufacturer, '')
		FROM medicines ORDER BY position, medicine_id`
	batchesQuery = `SELECT COALESCE(batch_id, ''), medicine_id, COALESCE(quantity, 0),
		to_char(expiry_date, 'YYYY-MM-DD')
		FROM batches ORDER BY position, batch_id`
	transactionsQuery = `SELECT transaction_id, medicine_id, type, quantity,
		to_char(transaction_date, 'YYYY-MM-DD'), COALESCE(note, '')
		FROM transactions ORDER BY position, transaction_id`
)

// LoadPostgres reads the three collections from the schema in
// internal/db/schema.sql. Rows keep their load position order.
func LoadPostgres(ctx context.Context, db *sql.DB) (repo.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var s repo.Snapshot
	var err error

	if s.Medicines, err = queryMedicines(ctx, db); err != nil {
		return repo.Snapshot{}, err
	}
	if s.Batches, err = queryBatches(ctx, db); err != nil {
		return repo.Snapshot{}, err
	}
	if s.Transactions, err = queryTransactions(ctx, db); err != nil {
		return repo.Snapshot{}, err
	}
	return s, nil
}

func queryMedicines(ctx context.Context, db *sql.DB) ([]models.Medicine, error) {
	rows, err := db.QueryContext(ctx, medicinesQuery)
	if err != nil {
		return nil, fmt.Errorf("query medicines: %w", err)
	}
	defer rows.Close()

	var medicines []models.Medicine
	for rows.Next() {
		var m models.Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Status, &m.ReorderLevel, &m.Unit, &m.Manufacturer); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		medicines = append(medicines, m)
	}
	return medicines, rows.Err()
}

func queryBatches(ctx context.Context, db *sql.DB) ([]models.Batch, error) {
	rows, err := db.QueryContext(ctx, batchesQuery)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	var batches []models.Batch
	for rows.Next() {
		var b models.Batch
		if err := rows.Scan(&b.ID, &b.MedicineID, &b.Quantity, &b.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func queryTransactions(ctx context.Context, db *sql.DB) ([]models.Transaction, error) {
	rows, err := db.QueryContext(ctx, transactionsQuery)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.MedicineID, &t.Type, &t.Quantity, &t.TransactionDate, &t.Note); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
