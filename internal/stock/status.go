// Package stock derives per-request stock and expiry information from the
// raw medicine and batch records.
package stock

import (
	"fmt"

	"github.com/rogerio-castellano/medicine-inventory/internal/models"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

// Derived medicine statuses.
const (
	StatusAvailable  = "available"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
	StatusInactive   = "inactive"
)

// Statuses lists the derived statuses accepted by the status filter.
var Statuses = []string{StatusAvailable, StatusLowStock, StatusOutOfStock, StatusInactive}

// MedicineStock is a medicine merged with its derived fields. Status holds
// the derived status, replacing the source flag in responses.
type MedicineStock struct {
	models.Medicine
	TotalQuantity int `json:"total_quantity"`
}

// Calculator computes derived stock figures from the batch repository.
type Calculator struct {
	batches repo.BatchRepository
}

func NewCalculator(batches repo.BatchRepository) *Calculator {
	return &Calculator{batches: batches}
}

// TotalQuantity sums the quantities of every batch of a medicine.
func (c *Calculator) TotalQuantity(medicineID string) (int, error) {
	batches, err := c.batches.GetByMedicineID(medicineID)
	if err != nil {
		return 0, fmt.Errorf("could not fetch batches for %s: %w", medicineID, err)
	}
	total := 0
	for _, b := range batches {
		total += b.Quantity
	}
	return total, nil
}

// DeriveStatus applies the status precedence: inactive, out of stock, low
// stock, available.
func DeriveStatus(m models.Medicine, total int) string {
	switch {
	case m.Status != models.MedicineStatusActive:
		return StatusInactive
	case total <= 0:
		return StatusOutOfStock
	case total <= m.ReorderLevel:
		return StatusLowStock
	default:
		return StatusAvailable
	}
}

// ComputeStatus returns m with its derived status and total quantity.
func (c *Calculator) ComputeStatus(m models.Medicine) (MedicineStock, error) {
	total, err := c.TotalQuantity(m.ID)
	if err != nil {
		return MedicineStock{}, err
	}
	ms := MedicineStock{Medicine: m, TotalQuantity: total}
	ms.Status = DeriveStatus(m, total)
	return ms, nil
}

// ComputeAll derives the status of every medicine, keeping input order.
func (c *Calculator) ComputeAll(medicines []models.Medicine) ([]MedicineStock, error) {
	out := make([]MedicineStock, 0, len(medicines))
	for _, m := range medicines {
		ms, err := c.ComputeStatus(m)
		if err != nil {
			return nil, err
		}
		out = append(out, ms)
	}
	return out, nil
}
