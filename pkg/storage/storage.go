package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ErrObjectNotExist is returned when the named object is not in the bucket.
var ErrObjectNotExist = errors.New("object does not exist")

type ObjectAttrs struct {
	Name        string
	ContentType string
}

type ItfStorage interface {
	BucketName() string
	ObjectAttrs(ctx context.Context, objectName string) (*ObjectAttrs, error)
	Download(ctx context.Context, objectName string) ([]byte, error)
	Upload(ctx context.Context, objectName string, data []byte, contentType string, publicRead bool) error
	ObjectURL(objectName string) string
}

type gcsClient struct {
	client     *gcs.Client
	bucketName string
}

func New(ctx context.Context) (ItfStorage, error) {
	var opts []option.ClientOption
	if credsFile := os.Getenv("STORAGE_CREDENTIALS_FILE"); credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &gcsClient{
		client:     client,
		bucketName: os.Getenv("STORAGE_BUCKET_NAME"),
	}, nil
}

func (s *gcsClient) BucketName() string {
	return s.bucketName
}

func (s *gcsClient) ObjectAttrs(ctx context.Context, objectName string) (*ObjectAttrs, error) {
	attrs, err := s.client.Bucket(s.bucketName).Object(objectName).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrObjectNotExist
		}
		return nil, err
	}

	return &ObjectAttrs{
		Name:        attrs.Name,
		ContentType: attrs.ContentType,
	}, nil
}

func (s *gcsClient) Download(ctx context.Context, objectName string) ([]byte, error) {
	reader, err := s.client.Bucket(s.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrObjectNotExist
		}
		return nil, err
	}
	defer func(reader *gcs.Reader) {
		if err := reader.Close(); err != nil {
			fmt.Println("Failed to close object reader")
		}
	}(reader)

	return io.ReadAll(reader)
}

func (s *gcsClient) Upload(ctx context.Context, objectName string, data []byte, contentType string, publicRead bool) error {
	writer := s.client.Bucket(s.bucketName).Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType
	if publicRead {
		writer.PredefinedACL = "publicRead"
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return err
	}

	return writer.Close()
}

func (s *gcsClient) ObjectURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName)
}
