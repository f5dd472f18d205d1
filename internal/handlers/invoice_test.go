package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func createInvoice(t *testing.T, h *InvoiceHandler, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var created map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return created
}

func recordPayment(t *testing.T, h *InvoiceHandler, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/invoices/payments?id="+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.RecordPayment(w, req)
	return w
}

func listInvoices(t *testing.T, h *InvoiceHandler, query string) []map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/invoices"+query, nil)
	w := httptest.NewRecorder()
	h.List(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list expected 200 got %d", w.Code)
	}
	var list struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return list.Items
}

func TestInvoiceCreateAndCollect(t *testing.T) {
	h := NewInvoiceHandler(newTestLedger(t))

	created := createInvoice(t, h, `{"branchId":"b1","invoiceNumber":"INV-1","totalValue":1000}`)
	id := created["id"].(string)

	if w := recordPayment(t, h, id, `{"amount":400}`); w.Code != http.StatusCreated {
		t.Fatalf("payment expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	items := listInvoices(t, h, "")
	if len(items) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(items))
	}
	if items[0]["collected"].(float64) != 400 || items[0]["remaining"].(float64) != 600 {
		t.Fatalf("unexpected balances: %#v", items[0])
	}

	// Overcollection permitted, remaining goes negative.
	if w := recordPayment(t, h, id, `{"amount":700}`); w.Code != http.StatusCreated {
		t.Fatalf("payment expected 201 got %d", w.Code)
	}
	items = listInvoices(t, h, "")
	if items[0]["collected"].(float64) != 1100 || items[0]["remaining"].(float64) != -100 {
		t.Fatalf("unexpected balances after overcollection: %#v", items[0])
	}
}

func TestInvoiceValidation(t *testing.T) {
	h := NewInvoiceHandler(newTestLedger(t))

	req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(`{"branchId":"b1","invoiceNumber":"","totalValue":100}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty number, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(`{"branchId":"b1","invoiceNumber":"INV-1","totalValue":0}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-positive total, got %d", w.Code)
	}
	if items := listInvoices(t, h, ""); len(items) != 0 {
		t.Fatalf("rejected invoices must not be stored")
	}
}

func TestInvoiceCreateFormRejectsNaNTotal(t *testing.T) {
	h := NewInvoiceHandler(newTestLedger(t))

	// strconv.ParseFloat accepts "NaN", so the form path can carry a NaN
	// total all the way to the ledger; it must be rejected there.
	form := url.Values{
		"branch_id":      {"b1"},
		"invoice_number": {"INV-1"},
		"total_value":    {"NaN"},
	}
	req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for NaN total, got %d body=%s", w.Code, w.Body.String())
	}

	// The JSON surface must stay serializable afterwards.
	listReq := httptest.NewRequest(http.MethodGet, "/invoices", nil)
	listW := httptest.NewRecorder()
	h.List(listW, listReq)
	if listW.Code != http.StatusOK {
		t.Fatalf("list expected 200 got %d body=%s", listW.Code, listW.Body.String())
	}
	if items := listInvoices(t, h, ""); len(items) != 0 {
		t.Fatalf("rejected invoice must not be stored: %#v", items)
	}
}

func TestPaymentValidationAndUnknownInvoice(t *testing.T) {
	h := NewInvoiceHandler(newTestLedger(t))
	created := createInvoice(t, h, `{"branchId":"b1","invoiceNumber":"INV-1","totalValue":100}`)
	id := created["id"].(string)

	if w := recordPayment(t, h, id, `{"amount":-5}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative amount, got %d", w.Code)
	}
	if w := recordPayment(t, h, "no-such-id", `{"amount":50}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown invoice, got %d", w.Code)
	}
	items := listInvoices(t, h, "")
	if items[0]["collected"].(float64) != 0 {
		t.Fatalf("payments changed on rejected command: %#v", items[0])
	}
}

func TestInvoiceListByBranch(t *testing.T) {
	h := NewInvoiceHandler(newTestLedger(t))
	createInvoice(t, h, `{"branchId":"b1","invoiceNumber":"A-1","totalValue":10}`)
	createInvoice(t, h, `{"branchId":"b2","invoiceNumber":"B-1","totalValue":20}`)
	createInvoice(t, h, `{"branchId":"b1","invoiceNumber":"A-2","totalValue":30}`)

	items := listInvoices(t, h, "?branch_id=b1")
	if len(items) != 2 {
		t.Fatalf("expected 2 invoices for b1, got %d", len(items))
	}
	if items[0]["invoiceNumber"] != "A-1" || items[1]["invoiceNumber"] != "A-2" {
		t.Fatalf("expected insertion order, got %#v", items)
	}
}
