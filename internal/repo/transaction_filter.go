package repo

// TransactionFilter narrows the transaction log. Empty fields do not filter.
// From and To are inclusive YYYY-MM-DD bounds compared as strings.
type TransactionFilter struct {
	MedicineID string
	Type       string
	From       string
	To         string
}
