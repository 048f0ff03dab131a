package datasource

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rogerio-castellano/medicine-inventory/internal/dates"
	"github.com/rogerio-castellano/medicine-inventory/internal/models"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

// Validate checks the invariants the query layer relies on: unique keys,
// batches pointing at known medicines, parseable calendar dates, known
// transaction types and non-negative stock figures. All problems are
// reported together.
func Validate(s repo.Snapshot) error {
	var errs []error

	medicineIDs := make(map[string]bool, len(s.Medicines))
	for i, m := range s.Medicines {
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("medicines[%d]: missing medicine_id", i))
			continue
		}
		if medicineIDs[m.ID] {
			errs = append(errs, fmt.Errorf("medicines[%d]: duplicated medicine_id %q", i, m.ID))
		}
		medicineIDs[m.ID] = true
		if m.ReorderLevel < 0 {
			errs = append(errs, fmt.Errorf("medicine %s: reorder_level cannot be negative", m.ID))
		}
	}

	for i, b := range s.Batches {
		if !medicineIDs[b.MedicineID] {
			errs = append(errs, fmt.Errorf("batches[%d]: unknown medicine_id %q", i, b.MedicineID))
		}
		if b.Quantity < 0 {
			errs = append(errs, fmt.Errorf("batches[%d]: quantity cannot be negative", i))
		}
		if err := checkDate(b.ExpiryDate); err != nil {
			errs = append(errs, fmt.Errorf("batches[%d]: expiry_date: %w", i, err))
		}
	}

	transactionIDs := make(map[string]bool, len(s.Transactions))
	for i, t := range s.Transactions {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("transactions[%d]: missing transaction_id", i))
		} else if transactionIDs[t.ID] {
			errs = append(errs, fmt.Errorf("transactions[%d]: duplicated transaction_id %q", i, t.ID))
		}
		transactionIDs[t.ID] = true
		if !slices.Contains(models.TransactionTypes, t.Type) {
			errs = append(errs, fmt.Errorf("transactions[%d]: unknown type %q", i, t.Type))
		}
		if err := checkDate(t.TransactionDate); err != nil {
			errs = append(errs, fmt.Errorf("transactions[%d]: transaction_date: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

func checkDate(s string) error {
	if !dates.IsYYYYMMDD(s) {
		return fmt.Errorf("%q is not YYYY-MM-DD", s)
	}
	_, err := dates.Parse(s)
	return err
}
