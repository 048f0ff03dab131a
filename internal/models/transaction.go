package models

const (
	TransactionRestock  = "restock"
	TransactionDispense = "dispense"
	TransactionAdjust   = "adjust"
)

// TransactionTypes lists the accepted transaction types in display order.
var TransactionTypes = []string{TransactionRestock, TransactionDispense, TransactionAdjust}

// Transaction is an entry of the stock movement log.
type Transaction struct {
	ID              string `json:"transaction_id"`
	MedicineID      string `json:"medicine_id"`
	Type            string `json:"type"`
	Quantity        int    `json:"quantity"`
	TransactionDate string `json:"transaction_date"`
	Note            string `json:"note,omitempty"`
}
