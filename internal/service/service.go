package service

import (
	"context"
	"time"

	"ecobin-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, fullName, email, phone, password string) (*domain.Account, string, string, error) // account, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)                                    // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type AccountService interface {
	GetProfile(ctx context.Context, accountID int32) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID int32, fullName, email, phone, location string) error
	Leaderboard(ctx context.Context, limit int32) ([]domain.LeaderboardEntry, error)
	Rank(ctx context.Context, accountID int32) (int32, error)
	Impact(ctx context.Context, accountID int32) (*domain.ImpactSummary, error)
}

// LedgerService is the sole mutation surface over account balances. Every
// credit goes through RecordRecycling and every debit through RedeemReward;
// the query operations are side-effect free and safe at any call frequency.
type LedgerService interface {
	RecordRecycling(ctx context.Context, accountID, binID int32, wasteCategory, photoURL string) (*domain.RecyclingSession, error)
	RedeemReward(ctx context.Context, accountID, rewardID int32) (*domain.Redemption, error)
	BalanceOf(ctx context.Context, accountID int32) (int32, error)
	GetSessions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.RecyclingSession, int32, error)
	GetRedemptions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Redemption, int32, error)
	CancelRedemption(ctx context.Context, redemptionID int32) error
}

type BinService interface {
	GetBin(ctx context.Context, id int32) (*domain.Bin, error)
	ResolveQRCode(ctx context.Context, qrCode string) (*domain.Bin, error)
	ListBins(ctx context.Context, status string, page, pageSize int32) ([]domain.Bin, int32, error)
	// CheckEligibility answers whether the bin currently accepts the
	// category, with a human-readable reason when it does not.
	CheckEligibility(ctx context.Context, binID int32, wasteCategory string) (bool, string, error)
	CreateBin(ctx context.Context, bin *domain.Bin) error
	UpdateBin(ctx context.Context, bin *domain.Bin) error
	DeleteBin(ctx context.Context, id int32) error
	UpdateBinStatus(ctx context.Context, id int32, status string, fillLevel int32) error
}

type RewardService interface {
	ListActiveRewards(ctx context.Context) ([]domain.Reward, error)
	GetReward(ctx context.Context, id int32) (*domain.Reward, error)
	ListRewards(ctx context.Context, page, pageSize int32) ([]domain.Reward, int32, error)
	CreateReward(ctx context.Context, reward *domain.Reward) error
	UpdateReward(ctx context.Context, reward *domain.Reward) error
}

type CommunityService interface {
	// Friends
	RequestFriendship(ctx context.Context, accountID, friendID int32) (*domain.Friendship, error)
	RespondFriendship(ctx context.Context, accountID, friendshipID int32, accept bool) error
	ListFriendships(ctx context.Context, accountID int32, status string) ([]domain.Friendship, error)

	// Teams
	CreateTeam(ctx context.Context, accountID int32, team *domain.Team) error
	JoinTeam(ctx context.Context, accountID, teamID int32) error
	LeaveTeam(ctx context.Context, accountID, teamID int32) error
	ListTeams(ctx context.Context, page, pageSize int32) ([]domain.Team, int32, error)
	GetTeamStanding(ctx context.Context, teamID int32) (*domain.Team, []domain.TeamMember, int64, error)

	// Challenges
	CreateChallenge(ctx context.Context, challenge *domain.Challenge) error
	JoinChallenge(ctx context.Context, accountID, challengeID int32) error
	ListActiveChallenges(ctx context.Context, now time.Time) ([]domain.Challenge, error)
	GetChallengeProgress(ctx context.Context, challengeID int32) (*domain.ChallengeProgress, error)

	// Feed
	CreatePost(ctx context.Context, post *domain.Post) error
	ListFeed(ctx context.Context, page, pageSize int32) ([]domain.Post, int32, error)
	LikePost(ctx context.Context, accountID, postID int32) error
	UnlikePost(ctx context.Context, accountID, postID int32) error
}

type AdminService interface {
	SearchAccounts(ctx context.Context, query string, page, pageSize int32) ([]domain.Account, int32, error)
	ActivityReport(ctx context.Context) (*domain.ActivityReport, error)
	AuditBalances(ctx context.Context) ([]domain.BalanceDrift, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, accountID, notificationID int32) error
}

type PhotoStorageService interface {
	// GetUploadURL hands out a presigned upload target plus the durable
	// download URL the recycling session should reference.
	GetUploadURL(ctx context.Context, accountID int32, filename, contentType string) (uploadURL, downloadURL string, err error)
}

type EmailService interface {
	SendRedemptionConfirmation(ctx context.Context, email, name, rewardTitle, code string, expiresAt *time.Time) error
	SendChallengeCompleted(ctx context.Context, email, name, challengeTitle string) error
	SendPickupReminder(ctx context.Context, email, name string) error
}
