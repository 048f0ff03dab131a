package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/medicine-inventory/internal/http/response"
	"github.com/rogerio-castellano/medicine-inventory/internal/models"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

// ListTransactionsHandler godoc
// @Summary Filter and paginate the transaction log
// @Tags transactions
// @Produce json
// @Param medicine_id query string false "Exact medicine ID"
// @Param type query string false "Transaction type" Enums(restock, dispense, adjust)
// @Param from query string false "Earliest transaction_date (YYYY-MM-DD, inclusive)"
// @Param to query string false "Latest transaction_date (YYYY-MM-DD, inclusive)"
// @Param limit query int false "Page size (1-100)" default(20)
// @Param offset query int false "Page offset (0-100000)" default(0)
// @Success 200 {object} Page[models.Transaction]
// @Failure 400 {object} response.APIError
// @Router /transactions [get]
func (s *Server) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, ok := intParam(w, q, "limit", limitBounds)
	if !ok {
		return
	}
	offset, ok := intParam(w, q, "offset", offsetBounds)
	if !ok {
		return
	}
	txType, ok := enumParam(w, q, "type", models.TransactionTypes)
	if !ok {
		return
	}
	from, ok := dateParam(w, q, "from")
	if !ok {
		return
	}
	to, ok := dateParam(w, q, "to")
	if !ok {
		return
	}
	if !dateRange(w, from, to) {
		return
	}

	transactions, err := s.transactions.Filter(repo.TransactionFilter{
		MedicineID: stringParam(q, "medicine_id").Value,
		Type:       txType.Value,
		From:       from.Value,
		To:         to.Value,
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	s.writeJSON(w, Paginate(transactions, limit.Value, offset.Value))
}

// GetTransactionHandler godoc
// @Summary Get transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} response.APIError
// @Router /transactions/{id} [get]
func (s *Server) GetTransactionHandler(w http.ResponseWriter, r *http.Request) {
	t, err := s.transactions.GetByID(pathParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrTransactionNotFound) {
			err = response.NotFound("Transaction not found")
		}
		s.fail(w, err)
		return
	}
	s.writeJSON(w, t)
}
