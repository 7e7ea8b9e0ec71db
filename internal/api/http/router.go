package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"ecobin-backend/internal/security"
	"ecobin-backend/internal/service"
	"ecobin-backend/internal/storage"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	TokenManager security.TokenManager
	Auth         service.AuthService
	Account      service.AccountService
	Ledger       service.LedgerService
	Bin          service.BinService
	Reward       service.RewardService
	Community    service.CommunityService
	Admin        service.AdminService
	Notification service.NotificationService
	Photo        service.PhotoStorageService
	MockStorage  *storage.MockStorageService
}

// NewRouter builds the full API route table. Paths are versioned under
// /api/v1; everything except auth, public bin lookup and the mock storage
// endpoints requires an access token.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger)

	authMW := NewAuthMiddleware(deps.TokenManager)

	authHandler := NewAuthHandler(deps.Auth)
	accountHandler := NewAccountHandler(deps.Account, deps.Notification)
	ledgerHandler := NewLedgerHandler(deps.Ledger)
	binHandler := NewBinHandler(deps.Bin)
	rewardHandler := NewRewardHandler(deps.Reward)
	communityHandler := NewCommunityHandler(deps.Community)
	adminHandler := NewAdminHandler(deps.Admin)
	photoHandler := NewPhotoHandler(deps.Photo, deps.MockStorage)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public endpoints
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/bins", binHandler.ListBins).Methods("GET")
	api.HandleFunc("/bins/resolve", binHandler.ResolveQRCode).Methods("GET")
	api.HandleFunc("/bins/{id:[0-9]+}", binHandler.GetBin).Methods("GET")
	api.HandleFunc("/bins/{id:[0-9]+}/eligibility", binHandler.CheckEligibility).Methods("GET")
	api.HandleFunc("/rewards", rewardHandler.ListActiveRewards).Methods("GET")
	api.HandleFunc("/rewards/{id:[0-9]+}", rewardHandler.GetReward).Methods("GET")
	api.HandleFunc("/leaderboard", accountHandler.Leaderboard).Methods("GET")

	// Mock storage (presigned URLs carry their own authorization)
	photoHandler.RegisterMockStorageRoutes(router)

	// Authenticated endpoints
	authed := api.PathPrefix("").Subrouter()
	authed.Use(authMW.RequireAccess)

	authed.HandleFunc("/profile", accountHandler.GetProfile).Methods("GET")
	authed.HandleFunc("/profile", accountHandler.UpdateProfile).Methods("PUT")
	authed.HandleFunc("/profile/rank", accountHandler.Rank).Methods("GET")
	authed.HandleFunc("/profile/impact", accountHandler.Impact).Methods("GET")
	authed.HandleFunc("/notifications", accountHandler.GetNotifications).Methods("GET")
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", accountHandler.MarkNotificationRead).Methods("POST")

	authed.HandleFunc("/recycling/sessions", ledgerHandler.RecordRecycling).Methods("POST")
	authed.HandleFunc("/recycling/sessions", ledgerHandler.ListSessions).Methods("GET")
	authed.HandleFunc("/balance", ledgerHandler.GetBalance).Methods("GET")
	authed.HandleFunc("/redemptions", ledgerHandler.RedeemReward).Methods("POST")
	authed.HandleFunc("/redemptions", ledgerHandler.ListRedemptions).Methods("GET")

	authed.HandleFunc("/photos/upload-url", photoHandler.GetUploadURL).Methods("POST")

	authed.HandleFunc("/friendships", communityHandler.RequestFriendship).Methods("POST")
	authed.HandleFunc("/friendships", communityHandler.ListFriendships).Methods("GET")
	authed.HandleFunc("/friendships/{id:[0-9]+}/respond", communityHandler.RespondFriendship).Methods("POST")
	authed.HandleFunc("/teams", communityHandler.CreateTeam).Methods("POST")
	authed.HandleFunc("/teams", communityHandler.ListTeams).Methods("GET")
	authed.HandleFunc("/teams/{id:[0-9]+}", communityHandler.GetTeamStanding).Methods("GET")
	authed.HandleFunc("/teams/{id:[0-9]+}/join", communityHandler.JoinTeam).Methods("POST")
	authed.HandleFunc("/teams/{id:[0-9]+}/leave", communityHandler.LeaveTeam).Methods("POST")
	authed.HandleFunc("/challenges", communityHandler.ListActiveChallenges).Methods("GET")
	authed.HandleFunc("/challenges/{id:[0-9]+}", communityHandler.GetChallengeProgress).Methods("GET")
	authed.HandleFunc("/challenges/{id:[0-9]+}/join", communityHandler.JoinChallenge).Methods("POST")
	authed.HandleFunc("/feed", communityHandler.ListFeed).Methods("GET")
	authed.HandleFunc("/feed", communityHandler.CreatePost).Methods("POST")
	authed.HandleFunc("/feed/{id:[0-9]+}/like", communityHandler.LikePost).Methods("POST")
	authed.HandleFunc("/feed/{id:[0-9]+}/like", communityHandler.UnlikePost).Methods("DELETE")

	// Admin endpoints
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMW.RequireAdmin)

	admin.HandleFunc("/accounts", adminHandler.SearchAccounts).Methods("GET")
	admin.HandleFunc("/report", adminHandler.ActivityReport).Methods("GET")
	admin.HandleFunc("/audit/balances", adminHandler.AuditBalances).Methods("POST")
	// Cancelling a redemption is an admin action; holders never cancel
	// their own codes.
	admin.HandleFunc("/redemptions/{id:[0-9]+}/cancel", ledgerHandler.CancelRedemption).Methods("POST")
	admin.HandleFunc("/bins", binHandler.CreateBin).Methods("POST")
	admin.HandleFunc("/bins/{id:[0-9]+}", binHandler.UpdateBin).Methods("PUT")
	admin.HandleFunc("/bins/{id:[0-9]+}", binHandler.DeleteBin).Methods("DELETE")
	admin.HandleFunc("/bins/{id:[0-9]+}/status", binHandler.UpdateBinStatus).Methods("PUT")
	admin.HandleFunc("/rewards", rewardHandler.ListRewards).Methods("GET")
	admin.HandleFunc("/rewards", rewardHandler.CreateReward).Methods("POST")
	admin.HandleFunc("/rewards/{id:[0-9]+}", rewardHandler.UpdateReward).Methods("PUT")
	admin.HandleFunc("/challenges", communityHandler.CreateChallenge).Methods("POST")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return router
}
