package site

import (
	"time"
	"unicode/utf8"

	"github.com/engineers-planet/site/internal/leads/domain"
)

// HomeSections is the order the landing page renders its sections in.
var HomeSections = []string{"navigation", "hero", "about", "companies", "engineers", "projects", "footer"}

// Toast is a notification shown once on the next page view.
type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// FormView is what a section template needs to draw one form.
type FormView struct {
	Kind   domain.EntityKind
	Slug   string
	Action string
	Phase  domain.Phase
	Copy   FormCopy
	Upload domain.UploadPolicy

	Values map[string]string
	Errors map[string]string
	// ResetAfter is how long the confirmation stays up.
	ResetAfter time.Duration
}

// NewFormView returns an empty Editing view of the kind's form.
func NewFormView(kind domain.EntityKind, upload domain.UploadPolicy) *FormView {
	return &FormView{
		Kind:   kind,
		Slug:   kind.Slug(),
		Action: "/forms/" + kind.Slug(),
		Phase:  domain.PhaseEditing,
		Copy:   FormCopies[kind],
		Upload: upload,
		Values: map[string]string{},
		Errors: map[string]string{},
	}
}

func (f *FormView) Value(name string) string { return f.Values[name] }

func (f *FormView) Error(name string) string { return f.Errors[name] }

func (f *FormView) Submitting() bool { return f.Phase == domain.PhaseSubmitting }

func (f *FormView) Submitted() bool { return f.Phase == domain.PhaseSubmitted }

// ResetSeconds rounds ResetAfter up to whole seconds for a meta refresh.
func (f *FormView) ResetSeconds() int {
	s := int((f.ResetAfter + time.Second - 1) / time.Second)
	if s < 1 {
		return 1
	}
	return s
}

// CharCount counts the characters entered in field.
func (f *FormView) CharCount(field string) int {
	return utf8.RuneCountInString(f.Values[field])
}

// Page is the landing page view model.
type Page struct {
	Title     string
	Version   string
	Nav       *Navigation
	Hero      Hero
	About     About
	Companies Companies
	Engineers Engineers
	Projects  Projects
	Footer    Footer
	Forms     map[string]*FormView
	Toasts    []Toast
	Year      int
}

// NewPage returns the landing page with every form in Editing.
func NewPage(version string) *Page {
	return &Page{
		Title:     BrandName + " | Engineering Talent for Italy",
		Version:   version,
		Nav:       NewNavigation(),
		Hero:      DefaultHero,
		About:     DefaultAbout,
		Companies: DefaultCompanies,
		Engineers: DefaultEngineers,
		Projects:  DefaultProjects,
		Footer:    DefaultFooter,
		Forms: map[string]*FormView{
			domain.KindCompanyInquiry.Slug():      NewFormView(domain.KindCompanyInquiry, domain.UploadPolicy{Mode: domain.UploadNone}),
			domain.KindEngineerApplication.Slug(): NewFormView(domain.KindEngineerApplication, domain.CVPolicy),
			domain.KindProjectSubmission.Slug():   NewFormView(domain.KindProjectSubmission, domain.AttachmentPolicy),
		},
		Year: time.Now().Year(),
	}
}

// Form returns the view of the kind's form.
func (p *Page) Form(kind domain.EntityKind) *FormView {
	return p.Forms[kind.Slug()]
}
