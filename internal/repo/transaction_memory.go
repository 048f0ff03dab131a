package repo

import (
	"slices"

	"github.com/rogerio-castellano/medicine-inventory/internal/models"
)

// InMemoryTransactionRepository is an in-memory implementation of TransactionRepository.
type InMemoryTransactionRepository struct {
	transactions []models.Transaction
	byID         map[string]int
}

func NewInMemoryTransactionRepository(transactions []models.Transaction) *InMemoryTransactionRepository {
	r := &InMemoryTransactionRepository{
		transactions: slices.Clone(transactions),
		byID:         make(map[string]int, len(transactions)),
	}
	for i, t := range r.transactions {
		if _, exists := r.byID[t.ID]; !exists {
			r.byID[t.ID] = i
		}
	}
	return r
}

func matchesFilter(t models.Transaction, tf TransactionFilter) bool {
	if tf.MedicineID != "" && t.MedicineID != tf.MedicineID {
		return false
	}
	if tf.Type != "" && t.Type != tf.Type {
		return false
	}
	if tf.From != "" && t.TransactionDate < tf.From {
		return false
	}
	if tf.To != "" && t.TransactionDate > tf.To {
		return false
	}
	return true
}

// Filter returns the transactions matching tf in log order. The result is
// never nil.
func (r *InMemoryTransactionRepository) Filter(tf TransactionFilter) ([]models.Transaction, error) {
	filtered := []models.Transaction{}
	for _, t := range r.transactions {
		if matchesFilter(t, tf) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// GetByID retrieves a transaction by its ID.
func (r *InMemoryTransactionRepository) GetByID(id string) (models.Transaction, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Transaction{}, ErrTransactionNotFound
	}
	return r.transactions[i], nil
}
