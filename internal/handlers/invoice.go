package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/amirkokoaa-byte/sales/internal/httpx"
	"github.com/amirkokoaa-byte/sales/internal/ledger"
	"github.com/amirkokoaa-byte/sales/internal/models"
)

type InvoiceHandler struct {
	L *ledger.Ledger
}

func NewInvoiceHandler(l *ledger.Ledger) *InvoiceHandler { return &InvoiceHandler{L: l} }

// invoiceView decorates an invoice with its derived balances so clients
// never compute them.
type invoiceView struct {
	models.Invoice
	Collected float64 `json:"collected"`
	Remaining float64 `json:"remaining"`
}

func toView(invs []models.Invoice) []invoiceView {
	out := make([]invoiceView, 0, len(invs))
	for _, inv := range invs {
		out = append(out, invoiceView{Invoice: inv, Collected: ledger.Collected(inv), Remaining: ledger.Remaining(inv)})
	}
	return out
}

// List: GET /invoices – optional ?branch_id= filter
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	var invs []models.Invoice
	if branchID := r.URL.Query().Get("branch_id"); branchID != "" {
		invs = h.L.BranchInvoices(branchID)
	} else {
		invs = h.L.Invoices()
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items": toView(invs),
		"total": h.L.TotalInvoiceValue(),
	})
}

// Create: POST /invoices – JSON or form
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	type createReq struct {
		BranchID      string  `json:"branchId"`
		InvoiceNumber string  `json:"invoiceNumber"`
		TotalValue    float64 `json:"totalValue"`
	}
	var req createReq
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
	} else if err := r.ParseForm(); err == nil {
		req.BranchID = r.Form.Get("branch_id")
		req.InvoiceNumber = r.Form.Get("invoice_number")
		req.TotalValue, _ = strconv.ParseFloat(r.Form.Get("total_value"), 64)
	}
	inv, err := h.L.SubmitInvoice(req.BranchID, req.InvoiceNumber, req.TotalValue)
	switch {
	case errors.Is(err, ledger.ErrEmptyInvoiceNumber):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"invoiceNumber": "required"})
		return
	case errors.Is(err, ledger.ErrInvalidTotal):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"totalValue": "must_be_positive"})
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

// RecordPayment: POST /invoices/payments?id=...
func (h *InvoiceHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	var amount float64
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		var req struct {
			Amount float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
		amount = req.Amount
	} else if err := r.ParseForm(); err == nil {
		amount, _ = strconv.ParseFloat(r.Form.Get("amount"), 64)
	}
	p, err := h.L.RecordPayment(id, amount)
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"amount": "must_be_positive"})
		return
	case errors.Is(err, ledger.ErrUnknownInvoice):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}
