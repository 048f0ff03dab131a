package repo

import "github.com/rogerio-castellano/medicine-inventory/internal/models"

// TransactionRepository defines the read operations on the transaction log.
type TransactionRepository interface {
	Filter(tf TransactionFilter) ([]models.Transaction, error)
	GetByID(id string) (models.Transaction, error)
}
