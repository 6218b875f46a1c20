package service

import (
	"context"
	"sync"

	"github.com/engineers-planet/site/internal/leads/domain"
	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient, user visible message (a toast).
type Notification struct {
	Kind    domain.EntityKind `json:"kind"`
	FormID  string            `json:"-"`
	Level   Level             `json:"level"`
	Message string            `json:"message"`
}

// Notifier receives workflow notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Recorder collects notifications for the current request.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Items returns a copy of what was recorded so far.
func (r *Recorder) Items() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

type recorderKey struct{}

// WithRecorder attaches rec to ctx so ContextNotifier can find it.
func WithRecorder(ctx context.Context, rec *Recorder) context.Context {
	return context.WithValue(ctx, recorderKey{}, rec)
}

// ContextNotifier forwards to the Recorder stored in ctx, if any, and logs
// every notification.
type ContextNotifier struct {
	Logger *zap.Logger
}

func (n ContextNotifier) Notify(ctx context.Context, note Notification) {
	if rec, ok := ctx.Value(recorderKey{}).(*Recorder); ok {
		rec.Notify(ctx, note)
	}
	if n.Logger != nil {
		n.Logger.Debug("notification",
			zap.String("kind", string(note.Kind)),
			zap.String("level", string(note.Level)),
			zap.String("message", note.Message))
	}
}
