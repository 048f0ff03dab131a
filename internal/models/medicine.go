package models

// MedicineStatusActive is the only source status that allows stock to be
// reported as available, low or out of stock.
const MedicineStatusActive = "active"

// Medicine represents a catalog entry in the inventory.
type Medicine struct {
	ID           string `json:"medicine_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	ReorderLevel int    `json:"reorder_level"`
	Unit         string `json:"unit,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
}
