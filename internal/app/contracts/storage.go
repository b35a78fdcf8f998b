package contracts

import (
	"context"
	"io"
)

type ObjectStorage interface {
	GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error)
	PutObject(ctx context.Context, bucketName, objectName string, content io.Reader, size int64, contentType string) error
}
