package storage

import (
	"context"
	"io"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

const minioErrorCodeNoSuchKey = "NoSuchKey"

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.ObjectStorage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

// GetObject returns nil content without error when the object does not exist.
func (m *minioStorage) GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, bucketName)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == minioErrorCodeNoSuchKey {
			return nil, nil
		}
		return nil, exceptions.ErrMinioGetObject(err, bucketName)
	}

	return content, nil
}

func (m *minioStorage) PutObject(ctx context.Context, bucketName, objectName string, content io.Reader, size int64, contentType string) error {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return nil
}
