package models

// Order models
//
// An order is immutable once saved: TotalValue is computed from the items
// at creation time and never recomputed afterwards.
type Order struct {
	ID         string      `json:"id"`
	BranchID   string      `json:"branchId"`
	Date       string      `json:"date"` // YYYY-MM-DD, local calendar day
	Items      []OrderItem `json:"items"`
	TotalValue float64     `json:"totalValue"`
	Timestamp  int64       `json:"timestamp"` // creation instant, unix millis
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
