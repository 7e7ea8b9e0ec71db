package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecobin-backend/internal/config"
	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/logger"
	"ecobin-backend/internal/repository"
)

// VerificationPolicy decides the verified flag on a new session. Photo
// evidence is advisory; the default policy trusts any session whose bin
// eligibility check passed.
type VerificationPolicy func(bin *domain.Bin, category domain.WasteCategory, photoURL string) bool

func defaultVerificationPolicy(bin *domain.Bin, category domain.WasteCategory, photoURL string) bool {
	return true
}

type ledgerService struct {
	ledgerRepo    repository.LedgerRepository
	accountRepo   repository.AccountRepository
	binRepo       repository.BinRepository
	rewardRepo    repository.RewardRepository
	challengeRepo repository.ChallengeRepository
	noteRepo      repository.NotificationRepository
	emailSvc      EmailService
	points        config.PointsConfig
	redemption    config.RedemptionConfig
	verify        VerificationPolicy
}

func NewLedgerService(
	ledgerRepo repository.LedgerRepository,
	accountRepo repository.AccountRepository,
	binRepo repository.BinRepository,
	rewardRepo repository.RewardRepository,
	challengeRepo repository.ChallengeRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	points config.PointsConfig,
	redemption config.RedemptionConfig,
) LedgerService {
	return &ledgerService{
		ledgerRepo:    ledgerRepo,
		accountRepo:   accountRepo,
		binRepo:       binRepo,
		rewardRepo:    rewardRepo,
		challengeRepo: challengeRepo,
		noteRepo:      noteRepo,
		emailSvc:      emailSvc,
		points:        points,
		redemption:    redemption,
		verify:        defaultVerificationPolicy,
	}
}

func (s *ledgerService) RecordRecycling(ctx context.Context, accountID, binID int32, wasteCategory, photoURL string) (*domain.RecyclingSession, error) {
	if !domain.ValidWasteCategory(wasteCategory) {
		return nil, ErrInvalidCategory
	}
	category := domain.WasteCategory(wasteCategory)

	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, ErrStorageUnavailable
	}

	bin, err := s.binRepo.GetByID(ctx, binID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBinNotFound
		}
		return nil, ErrStorageUnavailable
	}
	if !bin.Accepts(category) {
		reason := fmt.Sprintf("bin does not take %s", category)
		if bin.Status != domain.BinStatusActive {
			reason = fmt.Sprintf("bin is %s", bin.Status)
		}
		return nil, &BinIneligibleError{BinID: binID, Category: wasteCategory, Reason: reason}
	}

	session := &domain.RecyclingSession{
		AccountID:    accountID,
		BinID:        binID,
		Category:     category,
		PointsEarned: s.points.ValueFor(wasteCategory),
		Verified:     s.verify(bin, category, photoURL),
		PhotoURL:     photoURL,
	}

	// The session insert and the balance credit commit as one transaction
	// inside the repository; here we only retry transient failures.
	err = s.withRetry(func() error {
		return s.ledgerRepo.RecordSession(ctx, session)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		if errors.Is(err, repository.ErrRetryableConflict) {
			return nil, ErrConflictRetryable
		}
		logger.Error("Failed to record recycling session", "account_id", accountID, "bin_id", binID, "error", err)
		return nil, ErrStorageUnavailable
	}

	// Challenge contributions ride along best-effort; the ledger event is
	// already durable.
	if _, err := s.challengeRepo.ContributeToActive(ctx, accountID, session.PointsEarned, time.Now().UTC()); err != nil {
		logger.Warn("Failed to add challenge contribution", "account_id", accountID, "error", err)
	}

	return session, nil
}

func (s *ledgerService) RedeemReward(ctx context.Context, accountID, rewardID int32) (*domain.Redemption, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, ErrStorageUnavailable
	}

	// Re-fetched on every redemption so stale pricing never applies.
	reward, err := s.rewardRepo.GetByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, ErrStorageUnavailable
	}
	if !reward.Active {
		return nil, ErrRewardInactive
	}

	var expiresAt *time.Time
	if reward.ValidityDays != nil {
		t := time.Now().UTC().AddDate(0, 0, int(*reward.ValidityDays))
		expiresAt = &t
	}

	var redemption *domain.Redemption
	for attempt := 0; attempt < s.redemption.MaxCodeAttempts; attempt++ {
		code, err := generateRedemptionCode(s.redemption.CodeLength)
		if err != nil {
			return nil, ErrStorageUnavailable
		}

		candidate := &domain.Redemption{
			AccountID:   accountID,
			RewardID:    rewardID,
			PointsSpent: reward.PointsRequired,
			Code:        code,
			ExpiresAt:   expiresAt,
		}

		err = s.withRetry(func() error {
			return s.ledgerRepo.CreateRedemption(ctx, candidate)
		})
		switch {
		case err == nil:
			redemption = candidate
		case errors.Is(err, repository.ErrInsufficientBalance):
			balance, balErr := s.ledgerRepo.GetBalance(ctx, accountID)
			if balErr != nil {
				if errors.Is(balErr, sql.ErrNoRows) {
					return nil, ErrAccountNotFound
				}
				return nil, ErrStorageUnavailable
			}
			return nil, &InsufficientPointsError{Required: reward.PointsRequired, Balance: balance}
		case errors.Is(err, repository.ErrDuplicateCode):
			logger.Warn("Redemption code collision, regenerating", "reward_id", rewardID, "attempt", attempt+1)
			continue
		case errors.Is(err, repository.ErrRetryableConflict):
			return nil, ErrConflictRetryable
		default:
			logger.Error("Failed to create redemption", "account_id", accountID, "reward_id", rewardID, "error", err)
			return nil, ErrStorageUnavailable
		}
		break
	}
	if redemption == nil {
		return nil, ErrCodeGenerationExhausted
	}

	// Confirmation side effects are best-effort; the debit already committed.
	note := &domain.Notification{
		AccountID: accountID,
		Title:     "Reward Redeemed",
		Message:   fmt.Sprintf("You redeemed %s for %d points. Code: %s", reward.Title, reward.PointsRequired, redemption.Code),
		Attributes: map[string]string{
			"type":          "REWARD_REDEEMED",
			"redemption_id": fmt.Sprintf("%d", redemption.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create redemption notification", "account_id", accountID, "error", err)
	}
	if err := s.emailSvc.SendRedemptionConfirmation(ctx, account.Email, account.FullName, reward.Title, redemption.Code, redemption.ExpiresAt); err != nil {
		logger.Warn("Failed to send redemption confirmation email", "account_id", accountID, "error", err)
	}

	return redemption, nil
}

func (s *ledgerService) BalanceOf(ctx context.Context, accountID int32) (int32, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrAccountNotFound
		}
		return 0, ErrStorageUnavailable
	}
	return balance, nil
}

func (s *ledgerService) GetSessions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.RecyclingSession, int32, error) {
	return s.ledgerRepo.ListSessions(ctx, accountID, page, pageSize)
}

func (s *ledgerService) GetRedemptions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Redemption, int32, error) {
	redemptions, total, err := s.ledgerRepo.ListRedemptions(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	// Time-driven expiry is evaluated lazily at read time; the nightly
	// sweep persists it.
	now := time.Now().UTC()
	for i := range redemptions {
		redemptions[i].Status = redemptions[i].EffectiveStatus(now)
	}
	return redemptions, total, nil
}

func (s *ledgerService) CancelRedemption(ctx context.Context, redemptionID int32) error {
	if _, err := s.ledgerRepo.GetRedemptionByID(ctx, redemptionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRedemptionNotFound
		}
		return ErrStorageUnavailable
	}
	err := s.ledgerRepo.TransitionRedemption(ctx, redemptionID, domain.RedemptionStatusCancelled)
	if errors.Is(err, repository.ErrInvalidTransition) {
		return ErrRedemptionTerminal
	}
	if err != nil {
		return ErrStorageUnavailable
	}
	return nil
}

// withRetry runs fn up to the configured number of attempts, backing off
// briefly between tries. Sentinel rejections pass through untouched.
func (s *ledgerService) withRetry(fn func() error) error {
	attempts := s.redemption.MaxMutationRetry
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, repository.ErrInsufficientBalance) ||
			errors.Is(err, repository.ErrDuplicateCode) ||
			errors.Is(err, sql.ErrNoRows) {
			return err
		}
		time.Sleep(time.Duration(i+1) * 50 * time.Millisecond)
	}
	return err
}
