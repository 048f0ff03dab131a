package models

// Batch is a quantity of one medicine sharing a single expiry date.
type Batch struct {
	ID         string `json:"batch_id,omitempty"`
	MedicineID string `json:"medicine_id"`
	Quantity   int    `json:"quantity"`
	ExpiryDate string `json:"expiry_date"`
}
