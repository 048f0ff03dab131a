package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/medicine-inventory/internal/http/handlers"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/response"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/router"
	"github.com/rogerio-castellano/medicine-inventory/internal/models"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

// today is 2024-06-15 for every request of the suite.
var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

type errorBody struct {
	Error response.APIError `json:"error"`
}

func fixture() repo.Snapshot {
	return repo.Snapshot{
		Medicines: []models.Medicine{
			{ID: "M1", Name: "Paracetamol 500mg", Category: "Analgesic", Status: "active", ReorderLevel: 10, Unit: "tablet"},
			{ID: "M2", Name: "Amoxicillin 250mg", Category: "Antibiotic", Status: "active", ReorderLevel: 20, Unit: "capsule"},
			{ID: "M3", Name: "Ibuprofen 400mg", Category: "Analgesic", Status: "active", ReorderLevel: 15},
			{ID: "M4", Name: "Cetirizine 10mg", Category: "Antihistamine", Status: "discontinued", ReorderLevel: 5},
			{ID: "M5", Name: "Insulin Glargine", Category: "Hormone", Status: "active", ReorderLevel: 8, Manufacturer: "Sanofi"},
		},
		Batches: []models.Batch{
			{ID: "B1", MedicineID: "M1", Quantity: 5, ExpiryDate: "2024-06-15"},
			{ID: "B2", MedicineID: "M2", Quantity: 50, ExpiryDate: "2024-07-01"},
			{ID: "B3", MedicineID: "M2", Quantity: 10, ExpiryDate: "2024-06-01"},
			{ID: "B4", MedicineID: "M4", Quantity: 3, ExpiryDate: "2025-01-01"},
			{ID: "B5", MedicineID: "M5", Quantity: 8, ExpiryDate: "2024-08-14"},
		},
		Transactions: []models.Transaction{
			{ID: "T1", MedicineID: "M1", Type: "restock", Quantity: 20, TransactionDate: "2024-05-01"},
			{ID: "T2", MedicineID: "M1", Type: "dispense", Quantity: 15, TransactionDate: "2024-05-20"},
			{ID: "T3", MedicineID: "M2", Type: "restock", Quantity: 60, TransactionDate: "2024-06-01"},
			{ID: "T4", MedicineID: "M5", Type: "adjust", Quantity: 2, TransactionDate: "2024-06-10", Note: "count correction"},
			{ID: "T5", MedicineID: "M2", Type: "dispense", Quantity: 5, TransactionDate: "2024-06-14"},
		},
	}
}

func newServer(repos repo.Repositories) *handlers.Server {
	return handlers.NewServer(repos, zap.NewNop(), handlers.WithClock(func() time.Time { return fixedNow }))
}

func newRouter() http.Handler {
	return newRouterWith(router.Options{})
}

func newRouterWith(opts router.Options) http.Handler {
	return router.NewRouter(newServer(repo.NewInMemoryRepositories(fixture())), zap.NewNop(), opts)
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	return do(r, http.MethodGet, path, nil)
}

func do(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}
