package port

import (
	"context"
	"io"
)

// UploadInput carries one evidence object to storage. Size must match
// the reader exactly; S3 rejects short writes.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput contains the result of a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage is the claim-evidence blob store. Keys are built by the
// file service and are opaque here. Downloads go through presigned URLs
// so evidence bytes never stream through the API server.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
