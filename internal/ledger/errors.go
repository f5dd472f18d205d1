package ledger

import "errors"

// Command rejections. A rejected command leaves every collection untouched
// and triggers no persistence write; the caller decides how to surface the
// message.
var (
	ErrEmptyBranchName     = errors.New("branch name is empty")
	ErrNoItems             = errors.New("order has no items")
	ErrInvalidItem         = errors.New("order item has empty name, non-positive quantity or negative price")
	ErrEmptyInvoiceNumber  = errors.New("invoice number is empty")
	ErrInvalidTotal        = errors.New("invoice total must be positive")
	ErrInvalidAmount       = errors.New("payment amount must be positive")
	ErrUnknownInvoice      = errors.New("invoice not found")
	ErrMissingContactField = errors.New("contact requires branch name and manager phone")
)
