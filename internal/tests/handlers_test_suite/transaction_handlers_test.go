package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/medicine-inventory/internal/http/handlers"
	"github.com/rogerio-castellano/medicine-inventory/internal/models"
)

func transactionIDs(items []models.Transaction) []string {
	ids := make([]string, 0, len(items))
	for _, t := range items {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestListTransactionsHandler(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name      string
		path      string
		wantIDs   []string
		wantTotal int
	}{
		{"All in log order", "/transactions", []string{"T1", "T2", "T3", "T4", "T5"}, 5},
		{"By medicine", "/transactions?medicine_id=M1", []string{"T1", "T2"}, 2},
		{"Unknown medicine gives empty page", "/transactions?medicine_id=M9", []string{}, 0},
		{"By type", "/transactions?type=dispense", []string{"T2", "T5"}, 2},
		{"From is inclusive", "/transactions?from=2024-06-01", []string{"T3", "T4", "T5"}, 3},
		{"To is inclusive", "/transactions?to=2024-05-20", []string{"T1", "T2"}, 2},
		{"Closed range", "/transactions?from=2024-06-01&to=2024-06-10", []string{"T3", "T4"}, 2},
		{"Single day", "/transactions?from=2024-06-14&to=2024-06-14", []string{"T5"}, 1},
		{"Filters combine", "/transactions?medicine_id=M2&type=restock", []string{"T3"}, 1},
		{"Page after filtering", "/transactions?type=restock&limit=1&offset=1", []string{"T3"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.path)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
			}

			resp, err := decode[handlers.Page[models.Transaction]](w)
			if err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Data == nil {
				t.Fatal("expected data to be an array, got null")
			}
			if got := transactionIDs(resp.Data); !equalIDs(got, tt.wantIDs) {
				t.Errorf("expected ids %v, got %v", tt.wantIDs, got)
			}
			if resp.Meta.Total != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, resp.Meta.Total)
			}
		})
	}
}

func TestListTransactionsHandler_InvalidParams(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"Zero limit", "/transactions?limit=0", "limit must be >= 1"},
		{"Offset not a number", "/transactions?offset=x", "offset must be an integer"},
		{"Unknown type", "/transactions?type=transfer", "type must be one of: restock, dispense, adjust"},
		{"Type is case sensitive", "/transactions?type=Restock", "type must be one of: restock, dispense, adjust"},
		{"Malformed from", "/transactions?from=2024-6-1", "from must be YYYY-MM-DD"},
		{"Malformed to", "/transactions?to=yesterday", "to must be YYYY-MM-DD"},
		{"Empty from", "/transactions?from=", "from must be YYYY-MM-DD"},
		{"Inverted range", "/transactions?from=2024-06-10&to=2024-06-01", "from must be <= to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.path)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}

			resp, err := decode[errorBody](w)
			if err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Error.Code != "BAD_REQUEST" || resp.Error.Message != tt.message {
				t.Errorf("expected BAD_REQUEST %q, got %s %q", tt.message, resp.Error.Code, resp.Error.Message)
			}
		})
	}
}

func TestGetTransactionHandler(t *testing.T) {
	r := newRouter()

	t.Run("Existing transaction", func(t *testing.T) {
		w := get(r, "/transactions/T4")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		tx, err := decode[models.Transaction](w)
		if err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if tx.Type != "adjust" || tx.MedicineID != "M5" || tx.Note != "count correction" {
			t.Errorf("unexpected transaction: %+v", tx)
		}
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		w := get(r, "/transactions/does-not-exist")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 Not Found, got %d", w.Code)
		}
		resp, err := decode[errorBody](w)
		if err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Error.Code != "NOT_FOUND" || resp.Error.Message != "Transaction not found" {
			t.Errorf("unexpected error body: %+v", resp.Error)
		}
	})
}
