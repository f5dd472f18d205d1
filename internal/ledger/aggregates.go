package ledger

import "github.com/amirkokoaa-byte/sales/internal/models"

// Derived aggregates. All of these recompute from the current collections
// on every call; nothing here is cached.

// DailyOrderCount counts orders placed on the given calendar day.
func (l *Ledger) DailyOrderCount(date string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, o := range l.orders {
		if o.Date == date {
			n++
		}
	}
	return n
}

// DailyOrderValue sums the total value of orders placed on the given day.
func (l *Ledger) DailyOrderValue(date string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var sum float64
	for _, o := range l.orders {
		if o.Date == date {
			sum += o.TotalValue
		}
	}
	return sum
}

// TotalInvoiceValue sums TotalValue across all invoices.
func (l *Ledger) TotalInvoiceValue() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var sum float64
	for _, inv := range l.invoices {
		sum += inv.TotalValue
	}
	return sum
}

// BranchInvoices returns the invoices of one branch in insertion order.
func (l *Ledger) BranchInvoices(branchID string) []models.Invoice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := []models.Invoice{}
	for _, inv := range l.invoices {
		if inv.BranchID == branchID {
			out = append(out, inv)
		}
	}
	return out
}

// RecentOrders returns the last n orders by insertion order, most recent
// first.
func (l *Ledger) RecentOrders(n int) []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n > len(l.orders) {
		n = len(l.orders)
	}
	out := make([]models.Order, 0, n)
	for i := len(l.orders) - 1; i >= len(l.orders)-n; i-- {
		out = append(out, l.orders[i])
	}
	return out
}

// Collected sums the payments recorded against an invoice.
func Collected(inv models.Invoice) float64 {
	var sum float64
	for _, p := range inv.Payments {
		sum += p.Amount
	}
	return sum
}

// Remaining is the outstanding balance. It goes negative when an invoice
// is overcollected; that is not clamped.
func Remaining(inv models.Invoice) float64 {
	return inv.TotalValue - Collected(inv)
}
