package models

// Payment is a partial collection recorded against one invoice.
type Payment struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"` // YYYY-MM-DD
}
