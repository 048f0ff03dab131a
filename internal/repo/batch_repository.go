package repo

import "github.com/rogerio-castellano/medicine-inventory/internal/models"

// BatchRepository defines the read operations on stock batches.
type BatchRepository interface {
	GetAll() ([]models.Batch, error)
	GetByMedicineID(medicineID string) ([]models.Batch, error)
}
