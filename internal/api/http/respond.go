package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecobin-backend/internal/logger"
	"ecobin-backend/internal/service"
)

type errorResponse struct {
	Error     string `json:"error"`
	Shortfall int32  `json:"shortfall,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeServiceError maps the service error taxonomy to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var insufficient *service.InsufficientPointsError
	if errors.As(err, &insufficient) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:     insufficient.Error(),
			Shortfall: insufficient.Shortfall(),
		})
		return
	}
	var ineligible *service.BinIneligibleError
	if errors.As(err, &ineligible) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: ineligible.Error()})
		return
	}
	var invalid *service.ValidationError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalid.Error()})
		return
	}

	switch {
	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrBinNotFound),
		errors.Is(err, service.ErrRewardNotFound),
		errors.Is(err, service.ErrRedemptionNotFound),
		errors.Is(err, service.ErrFriendshipNotFound),
		errors.Is(err, service.ErrTeamNotFound),
		errors.Is(err, service.ErrChallengeNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrRewardInactive),
		errors.Is(err, service.ErrRedemptionTerminal),
		errors.Is(err, service.ErrFriendshipSettled),
		errors.Is(err, service.ErrTeamNotJoinable),
		errors.Is(err, service.ErrTeamOwnerCannotLeave),
		errors.Is(err, service.ErrChallengeNotActive):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotRequestRecipient):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCategory):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrConflictRetryable):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrStorageUnavailable),
		errors.Is(err, service.ErrCodeGenerationExhausted):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		logger.Error("Unhandled service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "invalid request body")
		return false
	}
	return true
}
