// Package memory is an in-process stand-in for the hosted backend, used in
// development and tests.
package memory

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/engineers-planet/site/internal/storage"
	"github.com/google/uuid"
)

// Record is a stored record.
type Record struct {
	ID        string
	Kind      domain.EntityKind
	Payload   any
	CreatedAt time.Time
}

// Object is a stored file.
type Object struct {
	Key         string
	ContentType string
	Data        []byte
}

// Store implements domain.RecordCreator and domain.FileUploader.
type Store struct {
	baseURL string

	mu      sync.RWMutex
	records []Record
	objects map[string]Object
}

// New returns a store whose file URLs start with baseURL.
func New(baseURL string) *Store {
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string]Object),
	}
}

func (s *Store) Create(ctx context.Context, kind domain.EntityKind, payload any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if kind.Collection() == "" {
		return "", domain.ErrUnknownKind
	}

	rec := Record{ID: uuid.New().String(), Kind: kind, Payload: payload, CreatedAt: time.Now()}

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	return rec.ID, nil
}

func (s *Store) UploadFile(ctx context.Context, file domain.File) (domain.UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.UploadResult{}, err
	}

	rc, err := file.Open()
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("failed to read %s: %w", file.Name, err)
	}

	key := storage.ObjectKey(file.Name, uuid.New().String(), time.Now())

	s.mu.Lock()
	s.objects[key] = Object{Key: key, ContentType: file.ContentType, Data: data}
	s.mu.Unlock()

	return domain.UploadResult{FileURL: s.baseURL + "/" + key}, nil
}

// Records returns the records of kind in creation order.
func (s *Store) Records(kind domain.EntityKind) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Record
	for _, r := range s.records {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Object returns the file stored under key.
func (s *Store) Object(key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[key]
	return o, ok
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }
