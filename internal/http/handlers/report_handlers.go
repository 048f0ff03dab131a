package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/medicine-inventory/internal/stock"
)

const (
	defaultWithinDays = 30
	maxWithinDays     = 365
)

// LowStockHandler godoc
// @Summary Low stock report
// @Description Active medicines at or below their reorder level, optionally capped by a quantity threshold. Also served at /medicines/low-stock/list.
// @Tags reports
// @Produce json
// @Param threshold query int false "Only medicines with total_quantity <= threshold"
// @Success 200 {object} LowStockReport
// @Failure 400 {object} response.APIError
// @Router /medicines/low-stock [get]
func (s *Server) LowStockHandler(w http.ResponseWriter, r *http.Request) {
	threshold, err := rawInt(r.URL.Query(), "threshold")
	if err != nil {
		badRequest(w, "threshold must be an integer")
		return
	}

	all, err := s.allMedicineStock()
	if err != nil {
		s.fail(w, err)
		return
	}

	results := []stock.MedicineStock{}
	for _, m := range all {
		if m.Status != stock.StatusLowStock {
			continue
		}
		if threshold.Present && m.TotalQuantity > threshold.Value {
			continue
		}
		results = append(results, m)
	}

	s.writeJSON(w, LowStockReport{Meta: TotalMeta{Total: len(results)}, Data: results})
}

// ExpiringSoonHandler godoc
// @Summary Batches expiring soon
// @Description Batches not yet expired whose expiry falls within the window. Also served at /medicines/expiring-soon/list.
// @Tags reports
// @Produce json
// @Param within_days query int false "Window in days (1-365)" default(30)
// @Success 200 {object} ExpiringSoonReport
// @Failure 400 {object} response.APIError
// @Router /medicines/expiring-soon [get]
func (s *Server) ExpiringSoonHandler(w http.ResponseWriter, r *http.Request) {
	within, err := rawInt(r.URL.Query(), "within_days")
	if err != nil || (within.Present && (within.Value < 1 || within.Value > maxWithinDays)) {
		badRequest(w, "within_days must be an integer between 1 and %d", maxWithinDays)
		return
	}
	if !within.Present {
		within.Value = defaultWithinDays
	}

	batches, err := s.batches.GetAll()
	if err != nil {
		s.fail(w, err)
		return
	}

	today := s.today()
	expiring, err := stock.ExpiringWithin(batches, today, within.Value)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.writeJSON(w, ExpiringSoonReport{
		AsOf:       today,
		WithinDays: within.Value,
		Total:      len(expiring),
		Data:       expiring,
	})
}

// ExpirySummaryHandler godoc
// @Summary Stock and expiry counters
// @Description Aggregate counts only. Also served at /medicines/expiry-summary/overview.
// @Tags reports
// @Produce json
// @Success 200 {object} ExpirySummary
// @Router /medicines/expiry-summary [get]
func (s *Server) ExpirySummaryHandler(w http.ResponseWriter, r *http.Request) {
	all, err := s.allMedicineStock()
	if err != nil {
		s.fail(w, err)
		return
	}

	batches, err := s.batches.GetAll()
	if err != nil {
		s.fail(w, err)
		return
	}

	today := s.today()
	expiring, err := stock.ExpiringWithin(batches, today, stock.ExpiringSoonDays)
	if err != nil {
		s.fail(w, err)
		return
	}

	summary := ExpirySummary{
		AsOf:                        today,
		ExpiringWithin30DaysBatches: len(expiring),
		ExpiredBatches:              stock.CountExpired(batches, today),
	}
	for _, m := range all {
		switch m.Status {
		case stock.StatusLowStock:
			summary.LowStockCount++
		case stock.StatusOutOfStock:
			summary.OutOfStockCount++
		}
	}

	s.writeJSON(w, summary)
}
