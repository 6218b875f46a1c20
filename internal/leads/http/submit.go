package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/engineers-planet/site/internal/leads/service"
	"github.com/engineers-planet/site/internal/logging"
)

type submission[T any] struct {
	formID string
	fields service.Fields
	result *service.Result[T]
	notes  []service.Notification
	err    error
}

// submit reads the request and runs wf for the current visitor.
func submit[T any](h *Handler, c *gin.Context, wf *service.Workflow[T]) submission[T] {
	schema := wf.Schema()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	s := submission[T]{formID: domain.FormID(h.visitorID(c), schema.Kind)}

	fields, err := readFields(c, schema.Fields)
	if err != nil {
		s.err = &domain.ValidationError{Fields: []domain.FieldError{{Field: "body", Message: err.Error()}}}
		return s
	}
	s.fields = fields

	files, err := readFiles(c, schema.Upload.Field)
	if err != nil {
		s.err = &domain.ValidationError{Fields: []domain.FieldError{{Field: schema.Upload.Field, Message: err.Error()}}}
		return s
	}

	rec := &service.Recorder{}
	ctx := service.WithRecorder(c.Request.Context(), rec)
	s.result, s.err = wf.Submit(ctx, s.formID, fields, files)
	s.notes = rec.Items()
	return s
}

// statusFor maps a submit error to the response status.
func statusFor(err error) int {
	var verr *domain.ValidationError
	var berr *domain.BackendError
	switch {
	case err == nil:
		return http.StatusCreated
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrFormBusy), errors.Is(err, domain.ErrFormSubmitted):
		return http.StatusConflict
	case errors.As(err, &berr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// postForm handles a browser form post. Success and conflicts redirect back
// to the form's anchor; other errors re-render the page with the entered values.
func postForm[T any](h *Handler, wf *service.Workflow[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := submit(h, c, wf)
		kind := wf.Schema().Kind
		status := statusFor(s.err)

		if status == http.StatusCreated || status == http.StatusConflict {
			h.setFlash(c, s.notes)
			c.Redirect(http.StatusSeeOther, "/#"+kind.Slug())
			return
		}

		if status == http.StatusInternalServerError {
			logging.FromContext(c.Request.Context(), h.logger).LogError("post_"+kind.Slug(), s.err)
		}

		page, err := h.page(c)
		if err != nil {
			h.renderError(c, err)
			return
		}
		form := page.Form(kind)
		form.Phase = domain.PhaseEditing
		for k, v := range s.fields {
			form.Values[k] = v
		}
		var verr *domain.ValidationError
		if errors.As(s.err, &verr) {
			for _, fe := range verr.Fields {
				if _, seen := form.Errors[fe.Field]; !seen {
					form.Errors[fe.Field] = fe.Message
				}
			}
		}
		page.Toasts = append(page.Toasts, toasts(s.notes)...)
		h.render(c, status, page)
	}
}

// postAPI handles a JSON or multipart API call.
func postAPI[T any](h *Handler, wf *service.Workflow[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := submit(h, c, wf)
		status := statusFor(s.err)
		notes := toasts(s.notes)

		if s.err == nil {
			c.JSON(status, gin.H{
				"ok":             true,
				"id":             s.result.RecordID,
				"record":         s.result.Payload,
				"phase":          s.result.Phase,
				"reset_after_ms": s.result.ResetAfter.Milliseconds(),
				"notifications":  notes,
			})
			return
		}

		body := gin.H{"ok": false, "error": errorMessage(s.err), "notifications": notes}
		var verr *domain.ValidationError
		if errors.As(s.err, &verr) {
			body["errors"] = verr.Fields
		}
		if status == http.StatusInternalServerError {
			logging.FromContext(c.Request.Context(), h.logger).LogError("api_"+wf.Schema().Kind.Slug(), s.err)
		}
		c.JSON(status, body)
	}
}

// errorMessage hides backend details from clients.
func errorMessage(err error) string {
	var verr *domain.ValidationError
	var berr *domain.BackendError
	switch {
	case errors.As(err, &verr):
		return "validation failed"
	case errors.Is(err, domain.ErrFormBusy), errors.Is(err, domain.ErrFormSubmitted):
		return err.Error()
	case errors.As(err, &berr):
		return berr.Op + " failed"
	default:
		return "internal error"
	}
}

func (h *Handler) state(c *gin.Context) {
	kind, err := domain.KindFromSlug(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
		return
	}

	phase, err := h.forms.Phase(c.Request.Context(), h.visitorID(c), kind)
	if err != nil {
		logging.FromContext(c.Request.Context(), h.logger).LogError("form_state", err, zap.String("kind", kind.Slug()))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "kind": kind.Slug(), "phase": phase})
}
