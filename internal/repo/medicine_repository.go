package repo

import "github.com/rogerio-castellano/medicine-inventory/internal/models"

// MedicineRepository defines the read operations on the medicine catalog.
type MedicineRepository interface {
	GetAll() ([]models.Medicine, error)
	GetByID(id string) (models.Medicine, error)
}
