package handlers

import (
	"net/http"

	"github.com/amirkokoaa-byte/sales/internal/httpx"
	"github.com/amirkokoaa-byte/sales/internal/ledger"
)

// Products: GET /products – the fixed catalogue offered on the order form.
func Products(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"items": ledger.ProductCatalogue})
}
