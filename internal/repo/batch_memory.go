package repo

import (
	"slices"

	"github.com/rogerio-castellano/medicine-inventory/internal/models"
)

// InMemoryBatchRepository is an in-memory implementation of BatchRepository.
type InMemoryBatchRepository struct {
	batches    []models.Batch
	byMedicine map[string][]models.Batch
}

func NewInMemoryBatchRepository(batches []models.Batch) *InMemoryBatchRepository {
	r := &InMemoryBatchRepository{
		batches:    slices.Clone(batches),
		byMedicine: make(map[string][]models.Batch),
	}
	for _, b := range r.batches {
		r.byMedicine[b.MedicineID] = append(r.byMedicine[b.MedicineID], b)
	}
	return r
}

// GetAll retrieves every batch in insertion order.
func (r *InMemoryBatchRepository) GetAll() ([]models.Batch, error) {
	return r.batches, nil
}

// GetByMedicineID returns the batches of one medicine, in insertion order.
// An unknown medicine yields an empty slice.
func (r *InMemoryBatchRepository) GetByMedicineID(medicineID string) ([]models.Batch, error) {
	return r.byMedicine[medicineID], nil
}
