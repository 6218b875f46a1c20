package firebase

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/engineers-planet/site/internal/storage"
)

// FileStore uploads files to the app's default Cloud Storage bucket and
// returns Firebase download URLs.
type FileStore struct {
	app    *firebase.App
	bucket string
}

func NewFileStore(app *firebase.App, bucket string) *FileStore {
	return &FileStore{app: app, bucket: bucket}
}

func (s *FileStore) UploadFile(ctx context.Context, file domain.File) (domain.UploadResult, error) {
	client, err := s.app.Storage(ctx)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("failed to get Storage client: %w", err)
	}
	bucket, err := client.Bucket(s.bucket)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("failed to open bucket: %w", err)
	}

	rc, err := file.Open()
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer rc.Close()

	key := storage.ObjectKey(file.Name, uuid.New().String(), time.Now())
	token := uuid.New().String()

	w := bucket.Object(key).NewWriter(ctx)
	w.ContentType = file.ContentType
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
		"originalName":                  file.Name,
	}
	if _, err := io.Copy(w, rc); err != nil {
		_ = w.Close()
		return domain.UploadResult{}, fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return domain.UploadResult{}, fmt.Errorf("failed to finalize %s: %w", key, err)
	}

	return domain.UploadResult{FileURL: DownloadURL(s.bucket, key, token)}, nil
}

// DownloadURL is the token protected public URL Firebase clients use.
func DownloadURL(bucket, key, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.PathEscape(key), url.QueryEscape(token))
}
