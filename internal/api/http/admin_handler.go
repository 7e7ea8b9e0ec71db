package http

import (
	"net/http"

	"ecobin-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (h *AdminHandler) SearchAccounts(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)
	query := r.URL.Query().Get("q")

	accounts, total, err := h.adminSvc.SearchAccounts(r.Context(), query, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	for i := range accounts {
		accounts[i].PasswordHash = ""
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"accounts": accounts,
		"total":    total,
		"page":     page,
	})
}

func (h *AdminHandler) ActivityReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.adminSvc.ActivityReport(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *AdminHandler) AuditBalances(w http.ResponseWriter, r *http.Request) {
	drifts, err := h.adminSvc.AuditBalances(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"drifts": drifts,
		"clean":  len(drifts) == 0,
	})
}
