package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirkokoaa-byte/sales/internal/ledger"
	"github.com/amirkokoaa-byte/sales/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	st, err := store.NewWithDB(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return New(ledger.Open(st), st)
}

func TestHealthEndpoints(t *testing.T) {
	h := newTestHandler(t)
	for _, path := range []string{"/health", "/healthz"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s expected 200 got %d", path, w.Code)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/branches", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", w.Code)
	}
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/payments?id=x", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", w.Code)
	}
}

func TestDashboardJSON(t *testing.T) {
	h := newTestHandler(t)

	body := `{"branchId":"1","items":[{"name":"X","quantity":2,"price":50}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("order create got %d body=%s", w.Code, w.Body.String())
	}

	dashReq := httptest.NewRequest(http.MethodGet, "/", nil)
	dashReq.Header.Set("Accept", "application/json")
	dashW := httptest.NewRecorder()
	h.ServeHTTP(dashW, dashReq)
	if dashW.Code != http.StatusOK {
		t.Fatalf("dashboard got %d", dashW.Code)
	}
	var stats struct {
		DailyOrderCount int     `json:"dailyOrderCount"`
		DailyOrderValue float64 `json:"dailyOrderValue"`
		BranchCount     int     `json:"branchCount"`
		RecentOrders    []struct {
			Branch     string  `json:"branch"`
			TotalValue float64 `json:"totalValue"`
		} `json:"recentOrders"`
	}
	if err := json.Unmarshal(dashW.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.DailyOrderCount != 1 || stats.DailyOrderValue != 100 {
		t.Fatalf("unexpected daily stats: %+v", stats)
	}
	if stats.BranchCount != 4 {
		t.Fatalf("expected 4 seeded branches, got %d", stats.BranchCount)
	}
	if len(stats.RecentOrders) != 1 || stats.RecentOrders[0].TotalValue != 100 {
		t.Fatalf("unexpected recent orders: %+v", stats.RecentOrders)
	}
	// branchId "1" is seeded, so the name must resolve
	if stats.RecentOrders[0].Branch == "unknown branch" {
		t.Fatalf("seeded branch must resolve to its name")
	}
}

func TestUnknownPathReturns404(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
