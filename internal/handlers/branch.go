package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/amirkokoaa-byte/sales/internal/httpx"
	"github.com/amirkokoaa-byte/sales/internal/ledger"
)

type BranchHandler struct {
	L *ledger.Ledger
}

func NewBranchHandler(l *ledger.Ledger) *BranchHandler { return &BranchHandler{L: l} }

// List: GET /branches
func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"items": h.L.Branches()})
}

// Create: POST /branches – JSON or form
func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var name string
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
		name = req.Name
	} else if err := r.ParseForm(); err == nil {
		name = r.Form.Get("name")
	}
	b, err := h.L.AddBranch(name)
	if errors.Is(err, ledger.ErrEmptyBranchName) {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"name": "required"})
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}
