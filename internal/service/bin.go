package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

type binService struct {
	binRepo repository.BinRepository
}

func NewBinService(binRepo repository.BinRepository) BinService {
	return &binService{binRepo: binRepo}
}

func (s *binService) GetBin(ctx context.Context, id int32) (*domain.Bin, error) {
	bin, err := s.binRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBinNotFound
		}
		return nil, err
	}
	return bin, nil
}

func (s *binService) ResolveQRCode(ctx context.Context, qrCode string) (*domain.Bin, error) {
	bin, err := s.binRepo.GetByQRCode(ctx, qrCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBinNotFound
		}
		return nil, err
	}
	return bin, nil
}

func (s *binService) ListBins(ctx context.Context, status string, page, pageSize int32) ([]domain.Bin, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.binRepo.List(ctx, status, page, pageSize)
}

func (s *binService) CheckEligibility(ctx context.Context, binID int32, wasteCategory string) (bool, string, error) {
	if !domain.ValidWasteCategory(wasteCategory) {
		return false, "", ErrInvalidCategory
	}
	bin, err := s.binRepo.GetByID(ctx, binID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, "", ErrBinNotFound
		}
		return false, "", err
	}
	category := domain.WasteCategory(wasteCategory)
	if bin.Status != domain.BinStatusActive {
		return false, fmt.Sprintf("bin is %s", bin.Status), nil
	}
	if !bin.Accepts(category) {
		return false, fmt.Sprintf("bin does not take %s waste", category), nil
	}
	return true, "", nil
}

func (s *binService) CreateBin(ctx context.Context, bin *domain.Bin) error {
	if bin.Status == "" {
		bin.Status = domain.BinStatusActive
	}
	for _, t := range bin.AcceptedTypes {
		if !domain.ValidWasteCategory(string(t)) {
			return ErrInvalidCategory
		}
	}
	return s.binRepo.Create(ctx, bin)
}

func (s *binService) UpdateBin(ctx context.Context, bin *domain.Bin) error {
	if _, err := s.binRepo.GetByID(ctx, bin.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBinNotFound
		}
		return err
	}
	for _, t := range bin.AcceptedTypes {
		if !domain.ValidWasteCategory(string(t)) {
			return ErrInvalidCategory
		}
	}
	return s.binRepo.Update(ctx, bin)
}

func (s *binService) DeleteBin(ctx context.Context, id int32) error {
	if err := s.binRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBinNotFound
		}
		return err
	}
	return nil
}

func (s *binService) UpdateBinStatus(ctx context.Context, id int32, status string, fillLevel int32) error {
	switch domain.BinStatus(status) {
	case domain.BinStatusActive, domain.BinStatusFull, domain.BinStatusMaintenance, domain.BinStatusOffline:
	default:
		return validationErrorf("unknown bin status %q", status)
	}
	if fillLevel < 0 {
		fillLevel = 0
	}
	if fillLevel > 100 {
		fillLevel = 100
	}
	if err := s.binRepo.UpdateStatus(ctx, id, domain.BinStatus(status), fillLevel); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBinNotFound
		}
		return err
	}
	return nil
}
