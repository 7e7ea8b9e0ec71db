package repository

import (
	"context"
	"errors"
	"time"

	"ecobin-backend/internal/domain"
)

// Storage-level sentinel errors surfaced by the postgres implementations.
// The service layer translates these into its own error taxonomy.
var (
	// ErrInsufficientBalance means the conditional debit affected zero rows:
	// either the account does not exist or its balance is below the debit.
	ErrInsufficientBalance = errors.New("insufficient balance for debit")
	// ErrDuplicateCode means the redemption code collided with an existing
	// one. The caller should regenerate and retry.
	ErrDuplicateCode = errors.New("redemption code already exists")
	// ErrInvalidTransition means a redemption status change was rejected
	// because the row was not in the expected prior status.
	ErrInvalidTransition = errors.New("redemption is not in a transitionable status")
	// ErrRetryableConflict means the database aborted the transaction due to
	// a serialization failure or deadlock. The whole transaction may be
	// retried.
	ErrRetryableConflict = errors.New("transaction aborted by concurrent update")
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int32) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Account, int32, error)
	Leaderboard(ctx context.Context, limit int32) ([]domain.LeaderboardEntry, error)
	Rank(ctx context.Context, accountID int32) (int32, error)
}

type BinRepository interface {
	Create(ctx context.Context, bin *domain.Bin) error
	GetByID(ctx context.Context, id int32) (*domain.Bin, error)
	GetByQRCode(ctx context.Context, qrCode string) (*domain.Bin, error)
	Update(ctx context.Context, bin *domain.Bin) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Bin, int32, error)
	UpdateStatus(ctx context.Context, id int32, status domain.BinStatus, fillLevel int32) error
}

type RewardRepository interface {
	Create(ctx context.Context, reward *domain.Reward) error
	GetByID(ctx context.Context, id int32) (*domain.Reward, error)
	Update(ctx context.Context, reward *domain.Reward) error
	ListActive(ctx context.Context) ([]domain.Reward, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Reward, int32, error)
}

// LedgerRepository owns the balance invariant at the storage layer. The two
// mutating calls each run as a single transaction so the event insert and the
// cached balance change are applied together or not at all.
type LedgerRepository interface {
	// RecordSession inserts the session and credits the account balance in
	// one transaction.
	RecordSession(ctx context.Context, session *domain.RecyclingSession) error
	// CreateRedemption debits the account with a conditional update
	// ("subtract N where balance >= N") and inserts the redemption in one
	// transaction. Returns ErrInsufficientBalance when the conditional
	// update affects zero rows and ErrDuplicateCode on a code collision.
	CreateRedemption(ctx context.Context, redemption *domain.Redemption) error
	GetBalance(ctx context.Context, accountID int32) (int32, error)
	ListSessions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.RecyclingSession, int32, error)
	ListRedemptions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Redemption, int32, error)
	GetRedemptionByID(ctx context.Context, id int32) (*domain.Redemption, error)
	// TransitionRedemption moves a redemption out of "processed". The guard
	// is enforced in SQL; ErrInvalidTransition when the row was not
	// processed.
	TransitionRedemption(ctx context.Context, id int32, to domain.RedemptionStatus) error
	// ExpireRedemptions marks every processed redemption past its expiry as
	// expired and credits nothing back; returns the number of rows swept.
	ExpireRedemptions(ctx context.Context, now time.Time) (int64, error)
	// AuditBalances recomputes each account balance from the event history
	// and reports accounts whose cached balance disagrees.
	AuditBalances(ctx context.Context) ([]domain.BalanceDrift, error)
	CategoryCounts(ctx context.Context, accountID int32) (map[domain.WasteCategory]int32, error)
	SummarizeActivity(ctx context.Context) (*domain.ActivityReport, error)
}

type FriendshipRepository interface {
	Create(ctx context.Context, friendship *domain.Friendship) error
	GetByID(ctx context.Context, id int32) (*domain.Friendship, error)
	GetByPair(ctx context.Context, accountID, friendID int32) (*domain.Friendship, error)
	UpdateStatus(ctx context.Context, id int32, status domain.FriendshipStatus) error
	Delete(ctx context.Context, id int32) error
	ListByAccount(ctx context.Context, accountID int32, status string) ([]domain.Friendship, error)
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int32) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	ListPublic(ctx context.Context, page, pageSize int32) ([]domain.Team, int32, error)
	AddMember(ctx context.Context, member *domain.TeamMember) error
	RemoveMember(ctx context.Context, teamID, accountID int32) error
	ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error)
	TotalPoints(ctx context.Context, teamID int32) (int64, error)
}

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *domain.Challenge) error
	GetByID(ctx context.Context, id int32) (*domain.Challenge, error)
	ListActive(ctx context.Context, now time.Time) ([]domain.Challenge, error)
	Join(ctx context.Context, participant *domain.ChallengeParticipant) error
	ListParticipants(ctx context.Context, challengeID int32) ([]domain.ChallengeParticipant, error)
	// ContributeToActive adds points to every active challenge the account
	// has joined. Called after a recycling session is recorded.
	ContributeToActive(ctx context.Context, accountID, points int32, now time.Time) (int64, error)
	Progress(ctx context.Context, challengeID int32) (*domain.ChallengeProgress, error)
	// CloseEnded deactivates challenges whose end date has passed and
	// returns the challenges it closed so callers can notify participants.
	CloseEnded(ctx context.Context, now time.Time) ([]domain.Challenge, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Post, int32, error)
	Like(ctx context.Context, postID, accountID int32) error
	Unlike(ctx context.Context, postID, accountID int32) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, accountID int32) error
}
