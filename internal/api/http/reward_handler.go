package http

import (
	"net/http"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/service"
)

type RewardHandler struct {
	rewardSvc service.RewardService
}

func NewRewardHandler(rewardSvc service.RewardService) *RewardHandler {
	return &RewardHandler{rewardSvc: rewardSvc}
}

func (h *RewardHandler) ListActiveRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardSvc.ListActiveRewards(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"rewards": rewards})
}

func (h *RewardHandler) GetReward(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid reward id")
		return
	}

	reward, err := h.rewardSvc.GetReward(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reward)
}

func (h *RewardHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	rewards, total, err := h.rewardSvc.ListRewards(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"rewards": rewards,
		"total":   total,
		"page":    page,
	})
}

func (h *RewardHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	var reward domain.Reward
	if !decodeBody(w, r, &reward) {
		return
	}

	if err := h.rewardSvc.CreateReward(r.Context(), &reward); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reward)
}

func (h *RewardHandler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid reward id")
		return
	}

	var reward domain.Reward
	if !decodeBody(w, r, &reward) {
		return
	}
	reward.ID = id

	if err := h.rewardSvc.UpdateReward(r.Context(), &reward); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reward)
}
