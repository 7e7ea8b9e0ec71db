package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface abstracts the backend holding recycling session photos.
// The mock implementation serves local files through the HTTP photo handler;
// a cloud backend would return real presigned URLs.
type StorageInterface interface {
	// GeneratePresignedUploadURL returns a URL the client PUTs the photo to.
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL returns a URL the photo can be fetched from.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage
	DeleteFile(ctx context.Context, key string) error

	// SaveFile saves a file (used by the mock storage HTTP handler)
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a file for reading (used by the mock storage HTTP handler)
	ReadFile(key string) (io.ReadCloser, error)
}
