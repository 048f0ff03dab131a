package stock

import (
	"testing"

	"github.com/rogerio-castellano/medicine-inventory/internal/models"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

func TestComputeStatus(t *testing.T) {
	calc := NewCalculator(repo.NewInMemoryBatchRepository([]models.Batch{
		{MedicineID: "M1", Quantity: 3, ExpiryDate: "2030-01-01"},
		{MedicineID: "M1", Quantity: 2, ExpiryDate: "2030-02-01"},
		{MedicineID: "M2", Quantity: 40, ExpiryDate: "2030-01-01"},
		{MedicineID: "M3", Quantity: 0, ExpiryDate: "2030-01-01"},
		{MedicineID: "M4", Quantity: 10, ExpiryDate: "2030-01-01"},
		{MedicineID: "M5", Quantity: 100, ExpiryDate: "2030-01-01"},
	}))

	tests := []struct {
		name      string
		medicine  models.Medicine
		wantTotal int
		want      string
	}{
		{"low stock", models.Medicine{ID: "M1", Status: "active", ReorderLevel: 10}, 5, StatusLowStock},
		{"available", models.Medicine{ID: "M2", Status: "active", ReorderLevel: 10}, 40, StatusAvailable},
		{"out of stock with empty batch", models.Medicine{ID: "M3", Status: "active", ReorderLevel: 10}, 0, StatusOutOfStock},
		{"out of stock without batches", models.Medicine{ID: "M9", Status: "active", ReorderLevel: 0}, 0, StatusOutOfStock},
		{"at reorder level is low", models.Medicine{ID: "M4", Status: "active", ReorderLevel: 10}, 10, StatusLowStock},
		{"inactive wins over quantity", models.Medicine{ID: "M5", Status: "discontinued", ReorderLevel: 10}, 100, StatusInactive},
		{"inactive wins over empty stock", models.Medicine{ID: "M9", Status: "inactive"}, 0, StatusInactive},
		{"status is case sensitive", models.Medicine{ID: "M2", Status: "Active", ReorderLevel: 10}, 40, StatusInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ComputeStatus(tt.medicine)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.TotalQuantity != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, got.TotalQuantity)
			}
			if got.Status != tt.want {
				t.Errorf("expected status %q, got %q", tt.want, got.Status)
			}
		})
	}
}

func TestComputeAll_KeepsOrder(t *testing.T) {
	calc := NewCalculator(repo.NewInMemoryBatchRepository(nil))
	got, err := calc.ComputeAll([]models.Medicine{{ID: "B"}, {ID: "A"}, {ID: "C"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "B" || got[1].ID != "A" || got[2].ID != "C" {
		t.Errorf("expected input order to be preserved, got %v", got)
	}
}
