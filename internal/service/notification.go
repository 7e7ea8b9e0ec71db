package service

import (
	"context"
	"database/sql"
	"errors"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, accountID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, accountID, notificationID int32) error {
	if err := s.noteRepo.MarkAsRead(ctx, notificationID, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}
