package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"

	"github.com/engineers-planet/site/internal/leads/domain"
)

// RecordStore creates one Firestore document per submission, in the
// collection named after the entity kind.
type RecordStore struct {
	client *firestore.Client
}

func NewRecordStore(ctx context.Context, app *firebase.App) (*RecordStore, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}
	return &RecordStore{client: client}, nil
}

func (s *RecordStore) Create(ctx context.Context, kind domain.EntityKind, payload any) (string, error) {
	collection := kind.Collection()
	if collection == "" {
		return "", domain.ErrUnknownKind
	}

	doc, _, err := s.client.Collection(collection).Add(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("failed to add %s document: %w", collection, err)
	}
	return doc.ID, nil
}

// Ping lists at most one collection to check connectivity.
func (s *RecordStore) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err == iterator.Done {
		return nil
	}
	return err
}

func (s *RecordStore) Close() error {
	return s.client.Close()
}
