package domain

import (
	"context"
	"io"
)

// RecordCreator persists one record of the given kind and returns its id.
type RecordCreator interface {
	Create(ctx context.Context, kind EntityKind, payload any) (string, error)
}

// FileUploader stores one file and returns a reference to it.
type FileUploader interface {
	UploadFile(ctx context.Context, file File) (UploadResult, error)
}

// UploadResult mirrors the backend's upload reply.
type UploadResult struct {
	FileURL string `json:"file_url"`
}

// File is a locally selected file handed to the workflow.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// Event is published after a record was created.
type Event struct {
	Kind     EntityKind `json:"kind"`
	RecordID string     `json:"record_id"`
	FormID   string     `json:"form_id"`
	Payload  any        `json:"payload"`
}

// EventPublisher fans created records out to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
