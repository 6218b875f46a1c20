package s3

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/engineers-planet/site/config"
	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/engineers-planet/site/internal/storage"
)

// putObjectAPI is the part of *s3.Client the store uses.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// FileStore uploads files to an S3 bucket.
type FileStore struct {
	api           putObjectAPI
	bucket        string
	region        string
	publicBaseURL string
}

// NewFileStore loads the default AWS credential chain for cfg.Region.
func NewFileStore(ctx context.Context, cfg *config.S3Config) (*FileStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newFileStore(s3.NewFromConfig(awsCfg), cfg), nil
}

func newFileStore(api putObjectAPI, cfg *config.S3Config) *FileStore {
	return &FileStore{
		api:           api,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

func (s *FileStore) UploadFile(ctx context.Context, file domain.File) (domain.UploadResult, error) {
	rc, err := file.Open()
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer rc.Close()

	key := storage.ObjectKey(file.Name, uuid.New().String(), time.Now())
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          rc,
		ContentLength: aws.Int64(file.Size),
		ContentType:   aws.String(contentType),
		Metadata:      map[string]string{"original-name": file.Name},
	})
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("failed to put %s: %w", key, err)
	}

	return domain.UploadResult{FileURL: s.ObjectURL(key)}, nil
}

// ObjectURL is the public URL of key, under S3_PUBLIC_BASE_URL when set.
func (s *FileStore) ObjectURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
