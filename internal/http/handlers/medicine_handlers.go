package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/medicine-inventory/internal/http/response"
	"github.com/rogerio-castellano/medicine-inventory/internal/models"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
	"github.com/rogerio-castellano/medicine-inventory/internal/stock"
)

// medicineFilter narrows medicines after their status has been derived.
type medicineFilter struct {
	Query    param[string]
	Category param[string]
	Status   param[string]
}

func matchesFilter(m stock.MedicineStock, mf medicineFilter) bool {
	if mf.Query.Present && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(mf.Query.Value)) {
		return false
	}
	if mf.Category.Present && m.Category != mf.Category.Value {
		return false
	}
	if mf.Status.Present && m.Status != mf.Status.Value {
		return false
	}
	return true
}

// allMedicineStock derives the status of the whole catalog.
func (s *Server) allMedicineStock() ([]stock.MedicineStock, error) {
	medicines, err := s.medicines.GetAll()
	if err != nil {
		return nil, err
	}
	return s.calc.ComputeAll(medicines)
}

func (s *Server) findMedicine(id string) (models.Medicine, error) {
	m, err := s.medicines.GetByID(id)
	if errors.Is(err, repo.ErrMedicineNotFound) {
		return m, response.NotFound("Medicine not found")
	}
	return m, err
}

// ListMedicinesHandler godoc
// @Summary Filter and paginate medicines
// @Description Medicines with their derived stock status, in catalog order.
// @Tags medicines
// @Produce json
// @Param q query string false "Case-insensitive substring of the name"
// @Param category query string false "Exact category"
// @Param status query string false "Derived status" Enums(available, low_stock, out_of_stock, inactive)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param offset query int false "Page offset (0-100000)" default(0)
// @Success 200 {object} Page[stock.MedicineStock]
// @Failure 400 {object} response.APIError
// @Router /medicines [get]
func (s *Server) ListMedicinesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, ok := intParam(w, q, "limit", limitBounds)
	if !ok {
		return
	}
	offset, ok := intParam(w, q, "offset", offsetBounds)
	if !ok {
		return
	}
	status, ok := enumParam(w, q, "status", stock.Statuses)
	if !ok {
		return
	}

	filter := medicineFilter{
		Query:    stringParam(q, "q"),
		Category: stringParam(q, "category"),
		Status:   status,
	}

	all, err := s.allMedicineStock()
	if err != nil {
		s.fail(w, err)
		return
	}

	results := []stock.MedicineStock{}
	for _, m := range all {
		if matchesFilter(m, filter) {
			results = append(results, m)
		}
	}

	s.writeJSON(w, Paginate(results, limit.Value, offset.Value))
}

// GetMedicineHandler godoc
// @Summary Get medicine by ID
// @Tags medicines
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} stock.MedicineStock
// @Failure 404 {object} response.APIError
// @Router /medicines/{id} [get]
func (s *Server) GetMedicineHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.findMedicine(pathParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}

	ms, err := s.calc.ComputeStatus(m)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, ms)
}

// GetMedicineBatchesHandler godoc
// @Summary List the batches of a medicine
// @Description Every batch annotated with days to expiry and expiry status. Not paginated.
// @Tags medicines
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} MedicineBatchesResponse
// @Failure 404 {object} response.APIError
// @Router /medicines/{id}/batches [get]
func (s *Server) GetMedicineBatchesHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.findMedicine(pathParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}

	batches, err := s.batches.GetByMedicineID(m.ID)
	if err != nil {
		s.fail(w, err)
		return
	}

	today := s.today()
	list := make([]stock.BatchExpiry, 0, len(batches))
	for _, b := range batches {
		be, err := stock.Annotate(b, today)
		if err != nil {
			s.fail(w, err)
			return
		}
		list = append(list, be)
	}

	s.writeJSON(w, MedicineBatchesResponse{MedicineID: m.ID, Batches: list})
}
