package handlers

import "github.com/rogerio-castellano/medicine-inventory/internal/stock"

type IndexResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type MedicineBatchesResponse struct {
	MedicineID string              `json:"medicine_id"`
	Batches    []stock.BatchExpiry `json:"batches"`
}

type TotalMeta struct {
	Total int `json:"total"`
}

type LowStockReport struct {
	Meta TotalMeta             `json:"meta"`
	Data []stock.MedicineStock `json:"data"`
}

type ExpiringSoonReport struct {
	AsOf       string              `json:"as_of"`
	WithinDays int                 `json:"within_days"`
	Total      int                 `json:"total"`
	Data       []stock.BatchExpiry `json:"data"`
}

type ExpirySummary struct {
	AsOf                        string `json:"as_of"`
	LowStockCount               int    `json:"low_stock_count"`
	OutOfStockCount             int    `json:"out_of_stock_count"`
	ExpiringWithin30DaysBatches int    `json:"expiring_within_30_days_batches"`
	ExpiredBatches              int    `json:"expired_batches"`
}
