package stock

import (
	"testing"

	"github.com/rogerio-castellano/medicine-inventory/internal/models"
)

const today = "2024-06-15"

func TestAnnotate(t *testing.T) {
	tests := []struct {
		expiry     string
		wantDays   int
		wantStatus string
	}{
		{"2024-06-14", -1, ExpiryExpired},
		{"2024-01-01", -166, ExpiryExpired},
		{"2024-06-15", 0, ExpiryExpiringSoon},
		{"2024-07-15", 30, ExpiryExpiringSoon},
		{"2024-07-16", 31, ExpiryValid},
	}

	for _, tt := range tests {
		t.Run(tt.expiry, func(t *testing.T) {
			got, err := Annotate(models.Batch{MedicineID: "M1", Quantity: 1, ExpiryDate: tt.expiry}, today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.DaysToExpiry != tt.wantDays {
				t.Errorf("expected %d days, got %d", tt.wantDays, got.DaysToExpiry)
			}
			if got.ExpiryStatus != tt.wantStatus {
				t.Errorf("expected %q, got %q", tt.wantStatus, got.ExpiryStatus)
			}
		})
	}
}

func TestExpiringWithin(t *testing.T) {
	batches := []models.Batch{
		{ID: "expired", ExpiryDate: "2024-06-14"},
		{ID: "today", ExpiryDate: "2024-06-15"},
		{ID: "tomorrow", ExpiryDate: "2024-06-16"},
		{ID: "next-month", ExpiryDate: "2024-07-15"},
		{ID: "far", ExpiryDate: "2025-06-15"},
	}

	tests := []struct {
		days int
		want []string
	}{
		{1, []string{"today", "tomorrow"}},
		{30, []string{"today", "tomorrow", "next-month"}},
		{365, []string{"today", "tomorrow", "next-month", "far"}},
	}

	for _, tt := range tests {
		got, err := ExpiringWithin(batches, today, tt.days)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("within %d: expected %d batches, got %d", tt.days, len(tt.want), len(got))
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("within %d: expected %s at %d, got %s", tt.days, id, i, got[i].ID)
			}
			if got[i].ExpiryStatus != "" {
				t.Errorf("expected no expiry status on report rows, got %q", got[i].ExpiryStatus)
			}
		}
	}

	if got, _ := ExpiringWithin(batches, today, 1); got[0].DaysToExpiry != 0 {
		t.Errorf("expected batch expiring today to have 0 days, got %d", got[0].DaysToExpiry)
	}
}

func TestCountExpired(t *testing.T) {
	batches := []models.Batch{
		{ExpiryDate: "2024-06-14"},
		{ExpiryDate: "2024-06-15"},
		{ExpiryDate: "2023-12-31"},
	}
	if got := CountExpired(batches, today); got != 2 {
		t.Errorf("expected 2 expired batches, got %d", got)
	}
}
