package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ecobin-backend/internal/service"
)

// LedgerHandler exposes the points ledger over HTTP. Identity always comes
// from the access token, never from the request body.
type LedgerHandler struct {
	ledgerSvc service.LedgerService
}

func NewLedgerHandler(ledgerSvc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

type recordRecyclingRequest struct {
	BinID         int32  `json:"bin_id"`
	WasteCategory string `json:"waste_category"`
	PhotoURL      string `json:"photo_url,omitempty"`
}

func (h *LedgerHandler) RecordRecycling(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req recordRecyclingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.BinID == 0 || req.WasteCategory == "" {
		writeBadRequest(w, "bin_id and waste_category are required")
		return
	}

	session, err := h.ledgerSvc.RecordRecycling(r.Context(), accountID, req.BinID, req.WasteCategory, req.PhotoURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

type redeemRequest struct {
	RewardID int32 `json:"reward_id"`
}

func (h *LedgerHandler) RedeemReward(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req redeemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RewardID == 0 {
		writeBadRequest(w, "reward_id is required")
		return
	}

	redemption, err := h.ledgerSvc.RedeemReward(r.Context(), accountID, req.RewardID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, redemption)
}

func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	balance, err := h.ledgerSvc.BalanceOf(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int32{"balance": balance})
}

func (h *LedgerHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	page, pageSize := paginationParams(r)
	sessions, total, err := h.ledgerSvc.GetSessions(r.Context(), accountID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"total":    total,
		"page":     page,
	})
}

func (h *LedgerHandler) ListRedemptions(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	page, pageSize := paginationParams(r)
	redemptions, total, err := h.ledgerSvc.GetRedemptions(r.Context(), accountID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"redemptions": redemptions,
		"total":       total,
		"page":        page,
	})
}

func (h *LedgerHandler) CancelRedemption(w http.ResponseWriter, r *http.Request) {
	if _, ok := GetAccountID(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid redemption id")
		return
	}

	if err := h.ledgerSvc.CancelRedemption(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func paginationParams(r *http.Request) (page, pageSize int32) {
	page = 1
	pageSize = 20
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
			page = int32(n)
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 && n <= 100 {
			pageSize = int32(n)
		}
	}
	return page, pageSize
}
