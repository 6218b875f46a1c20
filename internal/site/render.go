package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/engineers-planet/site/internal/leads/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"disciplineLabel": func(d domain.Discipline) string {
		return string(d) + " Engineering"
	},
	"inc": func(i int) int { return i + 1 },
	"formCtx": func(f *FormView, d []domain.Discipline) formContext {
		return formContext{Form: f, Disciplines: d}
	},
}

type formContext struct {
	Form        *FormView
	Disciplines []domain.Discipline
}

// Renderer draws the landing page from the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	for _, name := range append([]string{"layout"}, HomeSections...) {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is not defined", name)
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

type layoutData struct {
	*Page
	Body template.HTML
}

// Home writes the full landing page, sections in HomeSections order.
func (r *Renderer) Home(w io.Writer, p *Page) error {
	var body bytes.Buffer
	for _, name := range HomeSections {
		if err := r.tmpl.ExecuteTemplate(&body, name, p); err != nil {
			return fmt.Errorf("failed to render %s: %w", name, err)
		}
	}
	return r.tmpl.ExecuteTemplate(w, "layout", layoutData{Page: p, Body: template.HTML(body.String())})
}
