package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const publicURLPrefix = "https://storage.googleapis.com/"

// CloudStorageClient stores listing images as publicly readable objects.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// ObjectName builds "<folder>/<uuid>-<timestamp><ext>" for contentType.
func ObjectName(folder, contentType string, now time.Time) string {
	folder = strings.Trim(folder, "/")
	name := fmt.Sprintf("%s-%s%s", uuid.New().String(), now.Format("20060102150405"), extensionFor(contentType))
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	name := ObjectName(folder, contentType, time.Now())

	obj := c.client.Bucket(c.bucketName).Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy file to GCS: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %w", err)
	}

	return publicURLPrefix + c.bucketName + "/" + name, nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	name, err := ParseObjectName(fileURL, c.bucketName)
	if err != nil {
		return err
	}

	if err := c.client.Bucket(c.bucketName).Object(name).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// ParseObjectName extracts the object path from a public URL in bucket.
func ParseObjectName(fileURL, bucket string) (string, error) {
	if !strings.HasPrefix(fileURL, publicURLPrefix) {
		return "", fmt.Errorf("invalid GCS URL format")
	}

	parts := strings.SplitN(strings.TrimPrefix(fileURL, publicURLPrefix), "/", 2)
	if len(parts) != 2 || parts[0] != bucket || parts[1] == "" {
		return "", fmt.Errorf("invalid GCS URL format or bucket mismatch")
	}
	return parts[1], nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
