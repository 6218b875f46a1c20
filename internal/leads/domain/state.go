package domain

import (
	"context"
	"time"
)

// Phase is the position of a form in its submit cycle.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

// StateStore tracks the phase of each form instance.
//
// Begin moves Editing to Submitting and fails with ErrFormBusy or
// ErrFormSubmitted otherwise. Complete moves Submitting to Submitted and
// schedules the return to Editing after resetAfter. Abort returns a
// Submitting form to Editing.
type StateStore interface {
	Begin(ctx context.Context, formID string) error
	Complete(ctx context.Context, formID string, resetAfter time.Duration) error
	Abort(ctx context.Context, formID string) error
	Phase(ctx context.Context, formID string) (Phase, error)
}

// FormID identifies one visitor's instance of a form.
func FormID(visitorID string, kind EntityKind) string {
	return visitorID + ":" + kind.Slug()
}
