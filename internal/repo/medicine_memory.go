package repo

import (
	"slices"

	"github.com/rogerio-castellano/medicine-inventory/internal/models"
)

// InMemoryMedicineRepository is an in-memory implementation of MedicineRepository.
type InMemoryMedicineRepository struct {
	medicines []models.Medicine
	byID      map[string]int
}

// NewInMemoryMedicineRepository creates a repository over a copy of medicines.
// Insertion order is kept; on duplicated IDs the first record wins.
func NewInMemoryMedicineRepository(medicines []models.Medicine) *InMemoryMedicineRepository {
	r := &InMemoryMedicineRepository{
		medicines: slices.Clone(medicines),
		byID:      make(map[string]int, len(medicines)),
	}
	for i, m := range r.medicines {
		if _, exists := r.byID[m.ID]; !exists {
			r.byID[m.ID] = i
		}
	}
	return r
}

// GetAll retrieves all medicines in insertion order. The returned slice must
// not be modified.
func (r *InMemoryMedicineRepository) GetAll() ([]models.Medicine, error) {
	return r.medicines, nil
}

// GetByID retrieves a medicine by its ID.
func (r *InMemoryMedicineRepository) GetByID(id string) (models.Medicine, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Medicine{}, ErrMedicineNotFound
	}
	return r.medicines[i], nil
}
