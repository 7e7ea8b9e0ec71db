package http

import (
	"net/http"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/service"
)

type CommunityHandler struct {
	communitySvc service.CommunityService
}

func NewCommunityHandler(communitySvc service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communitySvc: communitySvc}
}

type friendRequestBody struct {
	FriendID int32 `json:"friend_id"`
}

func (h *CommunityHandler) RequestFriendship(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req friendRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	if req.FriendID == 0 {
		writeBadRequest(w, "friend_id is required")
		return
	}

	friendship, err := h.communitySvc.RequestFriendship(r.Context(), accountID, req.FriendID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, friendship)
}

type respondFriendshipBody struct {
	Accept bool `json:"accept"`
}

func (h *CommunityHandler) RespondFriendship(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid friendship id")
		return
	}

	var req respondFriendshipBody
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.communitySvc.RespondFriendship(r.Context(), accountID, id, req.Accept); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "responded"})
}

func (h *CommunityHandler) ListFriendships(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	friendships, err := h.communitySvc.ListFriendships(r.Context(), accountID, r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"friendships": friendships})
}

func (h *CommunityHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var team domain.Team
	if !decodeBody(w, r, &team) {
		return
	}

	if err := h.communitySvc.CreateTeam(r.Context(), accountID, &team); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, team)
}

func (h *CommunityHandler) JoinTeam(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid team id")
		return
	}

	if err := h.communitySvc.JoinTeam(r.Context(), accountID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "joined"})
}

func (h *CommunityHandler) LeaveTeam(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid team id")
		return
	}

	if err := h.communitySvc.LeaveTeam(r.Context(), accountID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

func (h *CommunityHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	teams, total, err := h.communitySvc.ListTeams(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"teams": teams,
		"total": total,
		"page":  page,
	})
}

func (h *CommunityHandler) GetTeamStanding(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid team id")
		return
	}

	team, members, totalPoints, err := h.communitySvc.GetTeamStanding(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"team":         team,
		"members":      members,
		"total_points": totalPoints,
	})
}

func (h *CommunityHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var challenge domain.Challenge
	if !decodeBody(w, r, &challenge) {
		return
	}

	if err := h.communitySvc.CreateChallenge(r.Context(), &challenge); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, challenge)
}

func (h *CommunityHandler) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid challenge id")
		return
	}

	if err := h.communitySvc.JoinChallenge(r.Context(), accountID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "joined"})
}

func (h *CommunityHandler) ListActiveChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.communitySvc.ListActiveChallenges(r.Context(), time.Now().UTC())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"challenges": challenges})
}

func (h *CommunityHandler) GetChallengeProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid challenge id")
		return
	}

	progress, err := h.communitySvc.GetChallengeProgress(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var post domain.Post
	if !decodeBody(w, r, &post) {
		return
	}
	post.AccountID = accountID

	if err := h.communitySvc.CreatePost(r.Context(), &post); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *CommunityHandler) ListFeed(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	posts, total, err := h.communitySvc.ListFeed(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"posts": posts,
		"total": total,
		"page":  page,
	})
}

func (h *CommunityHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid post id")
		return
	}

	if err := h.communitySvc.LikePost(r.Context(), accountID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "liked"})
}

func (h *CommunityHandler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid post id")
		return
	}

	if err := h.communitySvc.UnlikePost(r.Context(), accountID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "unliked"})
}
