package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/engineers-planet/site/internal/logging"
	"github.com/engineers-planet/site/internal/site"
)

// Home renders the landing page.
func (h *Handler) Home(c *gin.Context) {
	page, err := h.page(c)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, page)
}

// page builds the landing page with each form in the visitor's current phase.
func (h *Handler) page(c *gin.Context) (*site.Page, error) {
	page := site.NewPage(h.version)
	visitor := h.visitorID(c)

	for _, kind := range domain.Kinds {
		phase, err := h.forms.Phase(c.Request.Context(), visitor, kind)
		if err != nil {
			return nil, err
		}
		form := page.Form(kind)
		form.Phase = phase
		form.ResetAfter = h.forms.ResetDelay()
	}
	page.Toasts = h.takeFlash(c)
	return page, nil
}

func (h *Handler) render(c *gin.Context, status int, page *site.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Home(&buf, page); err != nil {
		h.renderError(c, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) renderError(c *gin.Context, err error) {
	logging.FromContext(c.Request.Context(), h.logger).LogError("render_page", err)
	c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
}

type uploadConfig struct {
	Field      string   `json:"field"`
	Multiple   bool     `json:"multiple"`
	Extensions []string `json:"extensions"`
	MaxBytes   int64    `json:"max_bytes"`
	Hint       string   `json:"hint"`
}

type formConfig struct {
	Kind        string              `json:"kind"`
	Fields      []string            `json:"fields"`
	Disciplines []domain.Discipline `json:"disciplines"`
	Upload      *uploadConfig       `json:"upload,omitempty"`
}

// config lists what each form accepts so API clients can mirror the page.
func (h *Handler) config(c *gin.Context) {
	forms := []formConfig{
		newFormConfig(h.forms.Companies.Schema().Kind, h.forms.Companies.Schema().Fields, h.forms.Companies.Schema().Upload, domain.Disciplines),
		newFormConfig(h.forms.Engineers.Schema().Kind, h.forms.Engineers.Schema().Fields, h.forms.Engineers.Schema().Upload, domain.Disciplines),
		newFormConfig(h.forms.Projects.Schema().Kind, h.forms.Projects.Schema().Fields, h.forms.Projects.Schema().Upload, domain.ProjectDisciplines),
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":               true,
		"version":          h.version,
		"reset_after_ms":   h.forms.ResetDelay().Milliseconds(),
		"max_upload_bytes": h.maxUploadBytes,
		"forms":            forms,
	})
}

func newFormConfig(kind domain.EntityKind, fields []string, p domain.UploadPolicy, d []domain.Discipline) formConfig {
	fc := formConfig{Kind: kind.Slug(), Fields: fields, Disciplines: d}
	if p.Mode != domain.UploadNone {
		fc.Upload = &uploadConfig{
			Field:      p.Field,
			Multiple:   p.Mode == domain.UploadMultiple,
			Extensions: p.Extensions,
			MaxBytes:   p.MaxBytes,
			Hint:       p.Hint,
		}
	}
	return fc
}
