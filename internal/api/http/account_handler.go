package http

import (
	"net/http"
	"strconv"

	"ecobin-backend/internal/service"
)

type AccountHandler struct {
	accountSvc      service.AccountService
	notificationSvc service.NotificationService
}

func NewAccountHandler(accountSvc service.AccountService, notificationSvc service.NotificationService) *AccountHandler {
	return &AccountHandler{
		accountSvc:      accountSvc,
		notificationSvc: notificationSvc,
	}
}

func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	account, err := h.accountSvc.GetProfile(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Never leak the password hash over the API.
	account.PasswordHash = ""
	writeJSON(w, http.StatusOK, account)
}

type updateProfileRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.accountSvc.UpdateProfile(r.Context(), accountID, req.FullName, req.Email, req.Phone, req.Location); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AccountHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	var limit int32 = 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			limit = int32(n)
		}
	}

	entries, err := h.accountSvc.Leaderboard(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"leaderboard": entries})
}

func (h *AccountHandler) Rank(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	rank, err := h.accountSvc.Rank(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int32{"rank": rank})
}

func (h *AccountHandler) Impact(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	summary, err := h.accountSvc.Impact(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *AccountHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	page, pageSize := paginationParams(r)
	notes, total, err := h.notificationSvc.GetNotifications(r.Context(), accountID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": notes,
		"total":         total,
		"page":          page,
	})
}

func (h *AccountHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid notification id")
		return
	}

	if err := h.notificationSvc.MarkAsRead(r.Context(), accountID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
