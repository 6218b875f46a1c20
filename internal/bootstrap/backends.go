package bootstrap

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"

	"github.com/engineers-planet/site/config"
	httpapi "github.com/engineers-planet/site/internal/api/http"
	"github.com/engineers-planet/site/internal/events/natsbus"
	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/engineers-planet/site/internal/leads/repository"
	fbstore "github.com/engineers-planet/site/internal/storage/firebase"
	"github.com/engineers-planet/site/internal/storage/memory"
	"github.com/engineers-planet/site/internal/storage/postgres"
	s3store "github.com/engineers-planet/site/internal/storage/s3"
)

// Backends are the collaborators selected by configuration.
type Backends struct {
	Records domain.RecordCreator
	Files   domain.FileUploader
	States  domain.StateStore
	Events  domain.EventPublisher

	// Memory is set when files are kept in process and must be served by the site.
	Memory *memory.Store
	// Health lists what /health probes, by name.
	Health map[string]httpapi.Pinger

	closers []func() error
}

// OpenBackends connects every configured backend. On error, whatever was
// already opened is closed.
func OpenBackends(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backends, error) {
	b := &Backends{Health: map[string]httpapi.Pinger{}}
	opened := false
	defer func() {
		if !opened {
			b.Close()
		}
	}()

	var mem *memory.Store
	memStore := func() *memory.Store {
		if mem == nil {
			mem = memory.New(cfg.Server.PublicURL)
		}
		return mem
	}

	var app *firebase.App
	firebaseApp := func() (*firebase.App, error) {
		if app != nil {
			return app, nil
		}
		a, err := fbstore.InitializeApp(ctx, &cfg.Firebase)
		if err != nil {
			return nil, err
		}
		app = a
		return app, nil
	}

	switch cfg.Submission.RecordBackend {
	case config.BackendMemory:
		b.Records = memStore()
		b.Health["records"] = memStore()
	case config.BackendFirestore:
		a, err := firebaseApp()
		if err != nil {
			return nil, err
		}
		rs, err := fbstore.NewRecordStore(ctx, a)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, rs.Close)
		b.Records = rs
		b.Health["records"] = rs
	case config.BackendPostgres:
		db, err := OpenDB(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, db.Close)
		rs := postgres.NewRecordStore(db)
		b.Records = rs
		b.Health["records"] = rs
	default:
		return nil, fmt.Errorf("unsupported RECORD_BACKEND %q", cfg.Submission.RecordBackend)
	}
	logger.Info("record backend ready", zap.String("backend", cfg.Submission.RecordBackend))

	switch cfg.Submission.FileBackend {
	case config.BackendMemory:
		b.Files = memStore()
		b.Memory = memStore()
	case config.BackendFirebase:
		a, err := firebaseApp()
		if err != nil {
			return nil, err
		}
		b.Files = fbstore.NewFileStore(a, cfg.Firebase.StorageBucket)
	case config.BackendS3:
		fs, err := s3store.NewFileStore(ctx, &cfg.S3)
		if err != nil {
			return nil, err
		}
		b.Files = fs
	default:
		return nil, fmt.Errorf("unsupported FILE_BACKEND %q", cfg.Submission.FileBackend)
	}
	logger.Info("file backend ready", zap.String("backend", cfg.Submission.FileBackend))

	if cfg.Redis.URL != "" {
		client, err := OpenRedis(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, client.Close)
		b.States = repository.NewRedisStateStore(client)
		b.Health["redis"] = redisPinger{client}
		logger.Info("form state in redis")
	} else {
		states := repository.NewMemoryStateStore()
		b.closers = append(b.closers, func() error { states.Close(); return nil })
		b.States = states
		logger.Info("form state in memory")
	}

	if cfg.NATS.URL != "" {
		nc, err := natsbus.Connect(cfg.NATS.URL, logger)
		if err != nil {
			return nil, fmt.Errorf("nats connect: %w", err)
		}
		b.closers = append(b.closers, func() error { return nc.Drain() })
		b.Events = natsbus.NewPublisher(nc, cfg.NATS.SubjectPrefix)
	}

	opened = true
	return b, nil
}

// Close releases backends in reverse order of opening.
func (b *Backends) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
