package service

import (
	"context"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/logger"
	"ecobin-backend/internal/repository"
)

type adminService struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
}

func NewAdminService(accountRepo repository.AccountRepository, ledgerRepo repository.LedgerRepository) AdminService {
	return &adminService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func (s *adminService) SearchAccounts(ctx context.Context, query string, page, pageSize int32) ([]domain.Account, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.accountRepo.Search(ctx, query, page, pageSize)
}

func (s *adminService) ActivityReport(ctx context.Context) (*domain.ActivityReport, error) {
	return s.ledgerRepo.SummarizeActivity(ctx)
}

func (s *adminService) AuditBalances(ctx context.Context) ([]domain.BalanceDrift, error) {
	drifts, err := s.ledgerRepo.AuditBalances(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range drifts {
		logger.Warn("Balance drift detected",
			"account_id", d.AccountID,
			"cached_balance", d.CachedBalance,
			"ledger_balance", d.LedgerBalance)
	}
	return drifts, nil
}
