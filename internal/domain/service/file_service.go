package service

import (
	"context"
	"io"
)

// ImageStorage stores listing photos and returns their public URLs.
type ImageStorage interface {
	UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	Close() error
}
