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

type OrderHandler struct {
	L *ledger.Ledger
}

func NewOrderHandler(l *ledger.Ledger) *OrderHandler { return &OrderHandler{L: l} }

// List: GET /orders – optional ?date=YYYY-MM-DD filter or ?recent=n
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("recent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_recent", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"items": h.L.RecentOrders(n)})
		return
	}
	orders := h.L.Orders()
	if date := r.URL.Query().Get("date"); date != "" {
		filtered := []models.Order{}
		for _, o := range orders {
			if o.Date == date {
				filtered = append(filtered, o)
			}
		}
		httpx.JSON(w, http.StatusOK, map[string]any{
			"items": filtered,
			"count": h.L.DailyOrderCount(date),
			"value": h.L.DailyOrderValue(date),
		})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": orders})
}

// Create: POST /orders – JSON or form
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	type createReq struct {
		BranchID string             `json:"branchId"`
		Items    []models.OrderItem `json:"items"`
	}
	var req createReq
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
	} else if err := r.ParseForm(); err == nil {
		// Form fallback accepts a single item per submission.
		req.BranchID = r.Form.Get("branch_id")
		qty, _ := strconv.Atoi(r.Form.Get("quantity"))
		price, _ := strconv.ParseFloat(r.Form.Get("price"), 64)
		if name := r.Form.Get("name"); name != "" {
			req.Items = []models.OrderItem{{Name: name, Quantity: qty, Price: price}}
		}
	}
	o, err := h.L.SubmitOrder(req.BranchID, req.Items)
	switch {
	case errors.Is(err, ledger.ErrNoItems):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"items": "required"})
		return
	case errors.Is(err, ledger.ErrInvalidItem):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"items": "invalid_name_quantity_or_price"})
		return
	}
	httpx.JSON(w, http.StatusCreated, o)
}
