package repo

import "errors"

// ErrMedicineNotFound is returned when a medicine is not found in the repository.
var ErrMedicineNotFound = errors.New("medicine not found")

// ErrTransactionNotFound is returned when a transaction is not found in the repository.
var ErrTransactionNotFound = errors.New("transaction not found")
