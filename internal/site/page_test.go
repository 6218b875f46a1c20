package site

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engineers-planet/site/internal/leads/domain"
)

func TestFormView_ResetSeconds(t *testing.T) {
	f := NewFormView(domain.KindCompanyInquiry, domain.UploadPolicy{})
	assert.Equal(t, 1, f.ResetSeconds())

	f.ResetAfter = 3 * time.Second
	assert.Equal(t, 3, f.ResetSeconds())

	f.ResetAfter = 2500 * time.Millisecond
	assert.Equal(t, 3, f.ResetSeconds())
}

func TestFormView_CharCount(t *testing.T) {
	f := NewFormView(domain.KindProjectSubmission, domain.AttachmentPolicy)
	assert.Equal(t, 0, f.CharCount("abstract"))

	f.Values["abstract"] = "Città è"
	assert.Equal(t, 7, f.CharCount("abstract"))
}

func TestNewPage_FormsStartEditing(t *testing.T) {
	p := NewPage("dev")
	require.Len(t, p.Forms, 3)
	for _, kind := range domain.Kinds {
		f := p.Form(kind)
		require.NotNil(t, f, kind.Slug())
		assert.Equal(t, domain.PhaseEditing, f.Phase)
		assert.Equal(t, "/forms/"+kind.Slug(), f.Action)
	}
	assert.Equal(t, "cv", p.Form(domain.KindEngineerApplication).Upload.Field)
	assert.Equal(t, domain.UploadNone, p.Form(domain.KindCompanyInquiry).Upload.Mode)
}

func render(t *testing.T, p *Page) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Home(&buf, p))
	return buf.String()
}

func TestRenderer_Home(t *testing.T) {
	body := render(t, NewPage("1.2.3"))

	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "engineers-planet-site 1.2.3")
	assert.NotContains(t, body, `http-equiv="refresh"`)

	last := -1
	for _, id := range []string{`id="nav"`, `id="about"`, `id="companies"`, `id="engineers"`, `id="projects"`} {
		i := strings.Index(body, id)
		require.GreaterOrEqual(t, i, 0, id)
		assert.Greater(t, i, last, id)
		last = i
	}

	assert.Contains(t, body, "Software Engineering")
	assert.Contains(t, body, `<option value="Multiple Disciplines">Multiple Disciplines</option>`)
	assert.Contains(t, body, `name="attachments"`)
	assert.Contains(t, body, "0 characters")
	for _, c := range FormCopies {
		assert.Contains(t, body, c.SubmitLabel)
	}
}

func TestRenderer_SubmittedAndSubmitting(t *testing.T) {
	p := NewPage("dev")
	eng := p.Form(domain.KindEngineerApplication)
	eng.Phase = domain.PhaseSubmitted
	eng.ResetAfter = 3 * time.Second

	proj := p.Form(domain.KindProjectSubmission)
	proj.Phase = domain.PhaseSubmitting

	body := render(t, p)
	assert.Contains(t, body, `content="3;url=/#engineers"`)
	assert.Contains(t, body, "Application Submitted!")
	assert.NotContains(t, body, `action="/forms/engineers"`)

	assert.Contains(t, body, "Submitting Project...")
	assert.Contains(t, body, ` disabled>`)
}

func TestRenderer_ErrorsAndValues(t *testing.T) {
	p := NewPage("dev")
	f := p.Form(domain.KindCompanyInquiry)
	f.Values["company_name"] = "Acme & Sons"
	f.Values["engineering_discipline"] = "Civil"
	f.Errors["email"] = "Invalid email format"
	p.Toasts = []Toast{{Level: "error", Message: "Failed to send your inquiry. Please try again."}}

	body := render(t, p)
	assert.Contains(t, body, `value="Acme &amp; Sons"`)
	assert.Contains(t, body, `<option value="Civil" selected>`)
	assert.Contains(t, body, `<p class="error">Invalid email format</p>`)
	assert.Contains(t, body, `<div class="toast error">Failed to send your inquiry. Please try again.</div>`)
}
