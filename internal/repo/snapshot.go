package repo

import "github.com/rogerio-castellano/medicine-inventory/internal/models"

// Snapshot is the full data set served by the API. It is loaded once at
// startup and never mutated afterwards.
type Snapshot struct {
	Medicines    []models.Medicine    `json:"medicines"`
	Batches      []models.Batch       `json:"batches"`
	Transactions []models.Transaction `json:"transactions"`
}

// Repositories bundles the read-only repositories built from a snapshot.
type Repositories struct {
	Medicines    MedicineRepository
	Batches      BatchRepository
	Transactions TransactionRepository
}

// NewInMemoryRepositories wraps a snapshot in in-memory repositories.
func NewInMemoryRepositories(s Snapshot) Repositories {
	return Repositories{
		Medicines:    NewInMemoryMedicineRepository(s.Medicines),
		Batches:      NewInMemoryBatchRepository(s.Batches),
		Transactions: NewInMemoryTransactionRepository(s.Transactions),
	}
}
