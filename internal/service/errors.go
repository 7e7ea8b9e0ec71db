package service

import (
	"errors"
	"fmt"
)

// Error taxonomy for the ledger and its collaborators. Handlers map these to
// HTTP statuses; nothing below ever wraps a raw driver error.
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrBinNotFound        = errors.New("bin not found")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrRedemptionNotFound = errors.New("redemption not found")

	ErrFriendshipNotFound   = errors.New("friendship not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrRewardInactive  = errors.New("reward is not active")
	ErrInvalidCategory = errors.New("unknown waste category")

	// ErrNotRequestRecipient means the caller tried to answer a friend
	// request addressed to someone else.
	ErrNotRequestRecipient  = errors.New("only the request recipient may respond")
	ErrFriendshipSettled    = errors.New("friend request was already answered")
	ErrTeamNotJoinable      = errors.New("team is not open for joining")
	ErrTeamOwnerCannotLeave = errors.New("owner cannot leave a team that still has members")
	ErrChallengeNotActive   = errors.New("challenge is no longer active")
	// ErrRedemptionTerminal means the redemption already left the processed
	// status; expired and cancelled never transition again.
	ErrRedemptionTerminal = errors.New("redemption is already expired or cancelled")

	// ErrConflictRetryable means a concurrent mutation raced ahead; the
	// whole operation (not just the write) may be retried.
	ErrConflictRetryable = errors.New("concurrent update conflict, retry the operation")
	// ErrStorageUnavailable is a transient infrastructure failure,
	// retryable with backoff.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
	// ErrCodeGenerationExhausted means every generated redemption code
	// collided. Practically unreachable with the configured code space.
	ErrCodeGenerationExhausted = errors.New("redemption code generation exhausted")
)

// ValidationError reports malformed input rejected before it reached
// storage.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// BinIneligibleError reports why a bin refused a waste category.
type BinIneligibleError struct {
	BinID    int32
	Category string
	Reason   string
}

func (e *BinIneligibleError) Error() string {
	return fmt.Sprintf("bin %d does not accept %s: %s", e.BinID, e.Category, e.Reason)
}

// InsufficientPointsError carries the shortfall so the caller can tell the
// user how many points they still need.
type InsufficientPointsError struct {
	Required int32
	Balance  int32
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: need %d more (required %d, balance %d)", e.Shortfall(), e.Required, e.Balance)
}

// Shortfall returns how many points are missing.
func (e *InsufficientPointsError) Shortfall() int32 {
	return e.Required - e.Balance
}
