package service

import (
	"context"
	"database/sql"
	"errors"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
	"ecobin-backend/internal/utils"
)

type accountService struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
}

func NewAccountService(accountRepo repository.AccountRepository, ledgerRepo repository.LedgerRepository) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func (s *accountService) GetProfile(ctx context.Context, accountID int32) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, accountID int32, fullName, email, phone, location string) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		return err
	}

	if fullName != "" {
		account.FullName = fullName
	}
	if email != "" {
		account.Email = email
	}
	if phone != "" {
		account.PhoneNumber = phone
	}
	if location != "" {
		account.Location = location
	}

	return s.accountRepo.Update(ctx, account)
}

func (s *accountService) Leaderboard(ctx context.Context, limit int32) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.accountRepo.Leaderboard(ctx, limit)
}

func (s *accountService) Rank(ctx context.Context, accountID int32) (int32, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}
	return s.accountRepo.Rank(ctx, accountID)
}

func (s *accountService) Impact(ctx context.Context, accountID int32) (*domain.ImpactSummary, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	counts, err := s.ledgerRepo.CategoryCounts(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return utils.ComputeImpact(counts), nil
}
