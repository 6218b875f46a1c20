package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/engineers-planet/site/internal/logging"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DefaultResetDelay is how long a form shows its confirmation.
const DefaultResetDelay = 3 * time.Second

// Fields maps form field names to the entered text.
type Fields map[string]string

// Get returns the trimmed value of name.
func (f Fields) Get(name string) string {
	return strings.TrimSpace(f[name])
}

// Schema parameterizes a Workflow for one record kind.
type Schema[T any] struct {
	Kind   domain.EntityKind
	Fields []string
	Upload domain.UploadPolicy
	// Build maps the entered fields to the record payload.
	Build func(f Fields) T
	// Attach stores the upload references on the payload, in upload order.
	Attach func(p *T, refs []string)

	SuccessMessage string
	FailureMessage string
}

// Deps are the collaborators shared by all workflows.
type Deps struct {
	Records  domain.RecordCreator
	Files    domain.FileUploader
	States   domain.StateStore
	Notifier Notifier
	Events   domain.EventPublisher
	Logger   *zap.Logger

	ResetDelay  time.Duration
	CallTimeout time.Duration
}

// Result describes a successful submission.
type Result[T any] struct {
	RecordID   string        `json:"id"`
	Payload    T             `json:"record"`
	Phase      domain.Phase  `json:"phase"`
	ResetAfter time.Duration `json:"-"`
}

// Workflow runs upload(s) → create → confirm → reset for one form kind.
type Workflow[T any] struct {
	schema   Schema[T]
	deps     Deps
	validate *validator.Validate
}

// NewWorkflow wires schema to deps. Records, Files and States are required.
func NewWorkflow[T any](schema Schema[T], deps Deps) *Workflow[T] {
	return &Workflow[T]{schema: schema, deps: deps.withDefaults(), validate: newValidator()}
}

func (d Deps) withDefaults() Deps {
	if d.ResetDelay <= 0 {
		d.ResetDelay = DefaultResetDelay
	}
	if d.Notifier == nil {
		d.Notifier = NotifierFunc(func(context.Context, Notification) {})
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return d
}

func (w *Workflow[T]) Schema() Schema[T] { return w.schema }

// Phase reports the current phase of formID.
func (w *Workflow[T]) Phase(ctx context.Context, formID string) (domain.Phase, error) {
	return w.deps.States.Phase(ctx, formID)
}

// Submit validates the input, uploads files one after another, creates the
// record and moves the form to Submitted. Validation failures return a
// *domain.ValidationError without touching the backend. Backend failures
// notify the user, return the form to Editing and return a *domain.BackendError.
func (w *Workflow[T]) Submit(ctx context.Context, formID string, fields Fields, files []domain.File) (*Result[T], error) {
	log := logging.FromContext(ctx, w.deps.Logger)
	op := "submit_" + w.schema.Kind.Slug()

	payload := w.schema.Build(fields)
	if err := validatePayload(w.validate, payload); err != nil {
		recordRejected()
		return nil, err
	}
	if errs := w.schema.Upload.Check(files); len(errs) > 0 {
		recordRejected()
		return nil, &domain.ValidationError{Fields: errs}
	}

	if err := w.deps.States.Begin(ctx, formID); err != nil {
		if errors.Is(err, domain.ErrFormBusy) || errors.Is(err, domain.ErrFormSubmitted) {
			return nil, err
		}
		log.LogError(op, err)
		w.fail(ctx, formID)
		return nil, fmt.Errorf("begin %s: %w", formID, err)
	}
	// Once the form is Submitting the submit runs to completion even if the
	// visitor goes away, so the state always leaves Submitting.
	ctx = context.WithoutCancel(ctx)

	refs := make([]string, 0, len(files))
	for _, f := range files {
		res, err := w.upload(ctx, f)
		if err != nil {
			log.LogError(op, err, zap.String("file", f.Name))
			return nil, w.abort(ctx, formID, &domain.BackendError{Op: "upload", Err: err})
		}
		refs = append(refs, res.FileURL)
	}
	if w.schema.Attach != nil {
		w.schema.Attach(&payload, refs)
	}

	id, err := w.create(ctx, payload)
	if err != nil {
		log.LogError(op, err)
		return nil, w.abort(ctx, formID, &domain.BackendError{Op: "create", Err: err})
	}

	if err := w.deps.States.Complete(ctx, formID, w.deps.ResetDelay); err != nil {
		// the record exists; the form just won't show its confirmation
		log.LogWarn(op, "failed to mark form submitted", zap.Error(err))
	}
	recordSubmission()
	w.deps.Notifier.Notify(ctx, Notification{
		Kind:    w.schema.Kind,
		FormID:  formID,
		Level:   LevelSuccess,
		Message: w.schema.SuccessMessage,
	})
	log.LogInfo(op, "record created", zap.String("record_id", id), zap.Int("files", len(refs)))

	if w.deps.Events != nil {
		ev := domain.Event{Kind: w.schema.Kind, RecordID: id, FormID: formID, Payload: payload}
		if err := w.deps.Events.Publish(ctx, ev); err != nil {
			log.LogWarn(op, "failed to publish event", zap.Error(err))
		}
	}

	return &Result[T]{
		RecordID:   id,
		Payload:    payload,
		Phase:      domain.PhaseSubmitted,
		ResetAfter: w.deps.ResetDelay,
	}, nil
}

func (w *Workflow[T]) upload(ctx context.Context, f domain.File) (domain.UploadResult, error) {
	cctx, cancel := w.callContext(ctx)
	defer cancel()

	res, err := w.deps.Files.UploadFile(cctx, f)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("%s: %w", f.Name, err)
	}
	recordUpload(f.Size)
	return res, nil
}

func (w *Workflow[T]) create(ctx context.Context, payload T) (string, error) {
	cctx, cancel := w.callContext(ctx)
	defer cancel()

	start := time.Now()
	id, err := w.deps.Records.Create(cctx, w.schema.Kind, payload)
	recordCreate(time.Since(start))
	if err != nil {
		return "", fmt.Errorf("%s: %w", w.schema.Kind, err)
	}
	return id, nil
}

func (w *Workflow[T]) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.deps.CallTimeout > 0 {
		return context.WithTimeout(ctx, w.deps.CallTimeout)
	}
	return context.WithCancel(ctx)
}

func (w *Workflow[T]) abort(ctx context.Context, formID string, err error) error {
	if aerr := w.deps.States.Abort(ctx, formID); aerr != nil {
		logging.FromContext(ctx, w.deps.Logger).LogWarn("abort", "failed to reset form", zap.Error(aerr))
	}
	w.fail(ctx, formID)
	return err
}

func (w *Workflow[T]) fail(ctx context.Context, formID string) {
	recordFailure()
	w.deps.Notifier.Notify(ctx, Notification{
		Kind:    w.schema.Kind,
		FormID:  formID,
		Level:   LevelError,
		Message: w.schema.FailureMessage,
	})
}
