package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/amirkokoaa-byte/sales/internal/models"
	"github.com/amirkokoaa-byte/sales/internal/store"
)

// Collection keys in the persistent store, one per collection. Each is
// saved independently right after its owning collection changes.
const (
	KeyBranches = "branches"
	KeyOrders   = "orders"
	KeyInvoices = "invoices"
	KeyContacts = "contacts"
)

// Ledger owns the four collections and enforces every business invariant,
// regardless of what the calling layer validated. All entities are
// append-only; the single exception is an invoice's payment slice, which
// grows via RecordPayment.
type Ledger struct {
	mu sync.Mutex
	st *store.Store

	branches []models.Branch
	orders   []models.Order
	invoices []models.Invoice
	contacts []models.Contact

	now func() time.Time
}

// Open loads the four collections from the store, seeding the default
// branches when nothing was saved yet (or the payload was corrupt).
func Open(st *store.Store) *Ledger {
	return &Ledger{
		st:       st,
		branches: store.Load(st, KeyBranches, defaultBranches()),
		orders:   store.Load(st, KeyOrders, []models.Order{}),
		invoices: store.Load(st, KeyInvoices, []models.Invoice{}),
		contacts: store.Load(st, KeyContacts, []models.Contact{}),
		now:      time.Now,
	}
}

func (l *Ledger) today() string { return l.now().Format("2006-01-02") }

// AddBranch appends a user-created branch. Names need not be unique.
func (l *Ledger) AddBranch(name string) (models.Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Branch{}, ErrEmptyBranchName
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	b := models.Branch{ID: newID(), Name: name, IsCustom: true}
	l.branches = append(l.branches, b)
	store.Save(l.st, KeyBranches, l.branches)
	return b, nil
}

// SubmitOrder records a dispatch of items to a branch. The total is
// computed here, once, and the order is immutable from then on.
func (l *Ledger) SubmitOrder(branchID string, items []models.OrderItem) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrNoItems
	}
	var total float64
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" || it.Quantity <= 0 || !(it.Price >= 0) {
			return models.Order{}, ErrInvalidItem
		}
		total += float64(it.Quantity) * it.Price
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	o := models.Order{
		ID:         newID(),
		BranchID:   branchID,
		Date:       l.today(),
		Items:      items,
		TotalValue: total,
		Timestamp:  l.now().UnixMilli(),
	}
	l.orders = append(l.orders, o)
	store.Save(l.st, KeyOrders, l.orders)
	return o, nil
}

// SubmitInvoice opens a new invoice with no payments yet.
func (l *Ledger) SubmitInvoice(branchID, invoiceNumber string, totalValue float64) (models.Invoice, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return models.Invoice{}, ErrEmptyInvoiceNumber
	}
	if !(totalValue > 0) {
		return models.Invoice{}, ErrInvalidTotal
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	inv := models.Invoice{
		ID:            newID(),
		BranchID:      branchID,
		InvoiceNumber: invoiceNumber,
		TotalValue:    totalValue,
		Payments:      []models.Payment{},
		Date:          l.today(),
	}
	l.invoices = append(l.invoices, inv)
	store.Save(l.st, KeyInvoices, l.invoices)
	return inv, nil
}

// RecordPayment appends a partial collection to the target invoice. A
// payment is never created without a resolvable invoice. Overcollection is
// permitted: Remaining may go negative.
func (l *Ledger) RecordPayment(invoiceID string, amount float64) (models.Payment, error) {
	if !(amount > 0) {
		return models.Payment{}, ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.invoices {
		if l.invoices[i].ID != invoiceID {
			continue
		}
		p := models.Payment{ID: newID(), Amount: amount, Date: l.today()}
		l.invoices[i].Payments = append(l.invoices[i].Payments, p)
		store.Save(l.st, KeyInvoices, l.invoices)
		return p, nil
	}
	return models.Payment{}, ErrUnknownInvoice
}

// AddContact stores a directory entry. Only the branch name and the
// manager phone are required.
func (l *Ledger) AddContact(c models.Contact) (models.Contact, error) {
	if strings.TrimSpace(c.BranchName) == "" || strings.TrimSpace(c.ManagerPhone) == "" {
		return models.Contact{}, ErrMissingContactField
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c.ID = newID()
	l.contacts = append(l.contacts, c)
	store.Save(l.st, KeyContacts, l.contacts)
	return c, nil
}

// Branches returns the branch collection in insertion order.
func (l *Ledger) Branches() []models.Branch {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Branch, len(l.branches))
	copy(out, l.branches)
	return out
}

// Orders returns the order collection in insertion order.
func (l *Ledger) Orders() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Invoices returns the invoice collection in insertion order.
func (l *Ledger) Invoices() []models.Invoice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Invoice, len(l.invoices))
	copy(out, l.invoices)
	return out
}

// Contacts returns the contact collection in insertion order.
func (l *Ledger) Contacts() []models.Contact {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Contact, len(l.contacts))
	copy(out, l.contacts)
	return out
}

// BranchName resolves a branch reference for display. Cross-references are
// by string identity, so a dangling id simply reports !ok and display
// layers label it as an unknown branch instead of failing.
func (l *Ledger) BranchName(branchID string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.branches {
		if b.ID == branchID {
			return b.Name, true
		}
	}
	return "", false
}
