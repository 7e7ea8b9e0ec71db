package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecobin-backend/internal/storage"
)

const uploadURLValidity = 15 * time.Minute

type photoStorageService struct {
	storage      storage.StorageInterface
	maxFileSize  int64
	allowedTypes []string
}

func NewPhotoStorageService(store storage.StorageInterface, maxFileSizeMB int64, allowedTypes []string) PhotoStorageService {
	return &photoStorageService{
		storage:      store,
		maxFileSize:  maxFileSizeMB * 1024 * 1024,
		allowedTypes: allowedTypes,
	}
}

func (s *photoStorageService) GetUploadURL(ctx context.Context, accountID int32, filename, contentType string) (string, string, error) {
	if !s.contentTypeAllowed(contentType) {
		return "", "", validationErrorf("content type %q is not allowed for session photos", contentType)
	}

	ext := path.Ext(filename)
	key := fmt.Sprintf("sessions/%d/%s%s", accountID, uuid.New().String(), ext)

	uploadURL, err := s.storage.GeneratePresignedUploadURL(ctx, key, contentType, uploadURLValidity)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate upload URL: %w", err)
	}

	// Download URLs are long-lived; the session row references this one.
	downloadURL, err := s.storage.GeneratePresignedDownloadURL(ctx, key, 0)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate download URL: %w", err)
	}

	return uploadURL, downloadURL, nil
}

func (s *photoStorageService) contentTypeAllowed(contentType string) bool {
	if len(s.allowedTypes) == 0 {
		return strings.HasPrefix(contentType, "image/")
	}
	for _, t := range s.allowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
