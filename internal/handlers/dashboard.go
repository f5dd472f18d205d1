package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/amirkokoaa-byte/sales/internal/httpx"
	"github.com/amirkokoaa-byte/sales/internal/ledger"
	"github.com/amirkokoaa-byte/sales/internal/view"
)

// unknownBranchLabel is shown wherever a branchId no longer resolves.
// A dangling reference is a display concern, never an error.
const unknownBranchLabel = "unknown branch"

// DashboardHandler renders the global overview: daily order stats,
// invoice totals, and the five most recent orders.
type DashboardHandler struct {
	L *ledger.Ledger
}

func NewDashboardHandler(l *ledger.Ledger) *DashboardHandler { return &DashboardHandler{L: l} }

type recentOrderView struct {
	Date       string  `json:"date"`
	Branch     string  `json:"branch"`
	TotalValue float64 `json:"totalValue"`
}

// Home: GET / – HTML or JSON
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Format("2006-01-02")
	recent := h.L.RecentOrders(5)
	recentViews := make([]recentOrderView, 0, len(recent))
	for _, o := range recent {
		name, ok := h.L.BranchName(o.BranchID)
		if !ok {
			name = unknownBranchLabel
		}
		recentViews = append(recentViews, recentOrderView{Date: o.Date, Branch: name, TotalValue: o.TotalValue})
	}
	stats := map[string]any{
		"date":              today,
		"dailyOrderCount":   h.L.DailyOrderCount(today),
		"dailyOrderValue":   h.L.DailyOrderValue(today),
		"invoiceCount":      len(h.L.Invoices()),
		"totalInvoiceValue": h.L.TotalInvoiceValue(),
		"branchCount":       len(h.L.Branches()),
		"contactCount":      len(h.L.Contacts()),
	}
	if httpx.WantsJSON(r) {
		stats["recentOrders"] = recentViews
		httpx.JSON(w, http.StatusOK, stats)
		return
	}
	data := map[string]any{
		"Stats":        stats,
		"RecentOrders": recentViews,
		"Branches":     h.L.Branches(),
		"Now":          time.Now(),
	}
	if err := view.Render(w, "dashboard.html", data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "template render error: %v", err)
	}
}
