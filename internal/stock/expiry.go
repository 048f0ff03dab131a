package stock

import (
	"github.com/rogerio-castellano/medicine-inventory/internal/dates"
	"github.com/rogerio-castellano/medicine-inventory/internal/models"
)

// Batch expiry statuses.
const (
	ExpiryExpired      = "expired"
	ExpiryExpiringSoon = "expiring_soon"
	ExpiryValid        = "valid"
)

// ExpiringSoonDays is the window used by the batch expiry status and the
// expiry summary.
const ExpiringSoonDays = 30

// BatchExpiry is a batch annotated with its distance to expiry.
type BatchExpiry struct {
	models.Batch
	DaysToExpiry int    `json:"days_to_expiry"`
	ExpiryStatus string `json:"expiry_status,omitempty"`
}

// IsExpired reports whether the batch expired before today.
func IsExpired(b models.Batch, today string) bool {
	return b.ExpiryDate < today
}

// ExpiryStatus classifies a batch against today given its days to expiry.
func ExpiryStatus(b models.Batch, today string, daysToExpiry int) string {
	switch {
	case IsExpired(b, today):
		return ExpiryExpired
	case daysToExpiry <= ExpiringSoonDays:
		return ExpiryExpiringSoon
	default:
		return ExpiryValid
	}
}

// DaysToExpiry returns the days from today to the batch expiry date.
func DaysToExpiry(b models.Batch, today string) (int, error) {
	return dates.DaysBetween(today, b.ExpiryDate)
}

// Annotate computes days to expiry and the expiry status of b.
func Annotate(b models.Batch, today string) (BatchExpiry, error) {
	days, err := DaysToExpiry(b, today)
	if err != nil {
		return BatchExpiry{}, err
	}
	return BatchExpiry{
		Batch:        b,
		DaysToExpiry: days,
		ExpiryStatus: ExpiryStatus(b, today, days),
	}, nil
}

// ExpiringWithin returns the batches not yet expired whose expiry falls
// within the given number of days, annotated with days to expiry only.
// A batch expiring today is included with zero days.
func ExpiringWithin(batches []models.Batch, today string, days int) ([]BatchExpiry, error) {
	out := []BatchExpiry{}
	for _, b := range batches {
		d, err := DaysToExpiry(b, today)
		if err != nil {
			return nil, err
		}
		if !IsExpired(b, today) && d <= days {
			out = append(out, BatchExpiry{Batch: b, DaysToExpiry: d})
		}
	}
	return out, nil
}

// CountExpired counts batches that expired before today.
func CountExpired(batches []models.Batch, today string) int {
	n := 0
	for _, b := range batches {
		if IsExpired(b, today) {
			n++
		}
	}
	return n
}
