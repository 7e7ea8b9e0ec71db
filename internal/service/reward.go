package service

import (
	"context"
	"database/sql"
	"errors"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

type rewardService struct {
	rewardRepo repository.RewardRepository
}

func NewRewardService(rewardRepo repository.RewardRepository) RewardService {
	return &rewardService{rewardRepo: rewardRepo}
}

func (s *rewardService) ListActiveRewards(ctx context.Context) ([]domain.Reward, error) {
	return s.rewardRepo.ListActive(ctx)
}

func (s *rewardService) GetReward(ctx context.Context, id int32) (*domain.Reward, error) {
	reward, err := s.rewardRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, err
	}
	return reward, nil
}

func (s *rewardService) ListRewards(ctx context.Context, page, pageSize int32) ([]domain.Reward, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.rewardRepo.List(ctx, page, pageSize)
}

func (s *rewardService) CreateReward(ctx context.Context, reward *domain.Reward) error {
	if err := validateReward(reward); err != nil {
		return err
	}
	return s.rewardRepo.Create(ctx, reward)
}

func (s *rewardService) UpdateReward(ctx context.Context, reward *domain.Reward) error {
	if err := validateReward(reward); err != nil {
		return err
	}
	if _, err := s.rewardRepo.GetByID(ctx, reward.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRewardNotFound
		}
		return err
	}
	return s.rewardRepo.Update(ctx, reward)
}

func validateReward(reward *domain.Reward) error {
	if reward.Title == "" {
		return validationErrorf("reward title is required")
	}
	if reward.PointsRequired <= 0 {
		return validationErrorf("points_required must be positive, got %d", reward.PointsRequired)
	}
	if reward.ValidityDays != nil && *reward.ValidityDays <= 0 {
		return validationErrorf("validity_days must be positive when set, got %d", *reward.ValidityDays)
	}
	return nil
}
