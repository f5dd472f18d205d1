package models

// Invoice is a billable amount owed by a branch, collected over time via
// payments. The payments slice is the only part of an invoice that mutates
// after creation (append only).
type Invoice struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branchId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	TotalValue    float64   `json:"totalValue"`
	Payments      []Payment `json:"payments"`
	Date          string    `json:"date"` // YYYY-MM-DD
}
