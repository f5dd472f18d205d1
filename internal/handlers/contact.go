package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/amirkokoaa-byte/sales/internal/httpx"
	"github.com/amirkokoaa-byte/sales/internal/ledger"
	"github.com/amirkokoaa-byte/sales/internal/models"
	"github.com/amirkokoaa-byte/sales/internal/view"
)

type ContactHandler struct {
	L *ledger.Ledger
}

func NewContactHandler(l *ledger.Ledger) *ContactHandler { return &ContactHandler{L: l} }

type contactView struct {
	models.Contact
	WhatsApp string `json:"whatsapp"`
}

// List: GET /contacts – HTML or JSON
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts := h.L.Contacts()
	views := make([]contactView, 0, len(contacts))
	for _, c := range contacts {
		views = append(views, contactView{Contact: c, WhatsApp: view.WhatsAppLink(c.ManagerPhone)})
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": views})
		return
	}
	if err := view.Render(w, "contacts.html", map[string]any{"Contacts": views}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "template render error: %v", err)
	}
}

// Create: POST /contacts – JSON or form
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Contact
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
	} else if err := r.ParseForm(); err == nil {
		req.BranchName = r.Form.Get("branch_name")
		req.ManagerName = r.Form.Get("manager_name")
		req.ManagerPhone = r.Form.Get("manager_phone")
		req.SupervisorName = r.Form.Get("supervisor_name")
	}
	c, err := h.L.AddContact(req)
	if errors.Is(err, ledger.ErrMissingContactField) {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{
			"branchName":   "required",
			"managerPhone": "required",
		})
		return
	}
	if httpx.WantsJSON(r) || strings.Contains(ct, "application/json") {
		httpx.JSON(w, http.StatusCreated, c)
		return
	}
	http.Redirect(w, r, "/contacts", http.StatusSeeOther)
}
