package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// page is the data every admin template receives.
type page struct {
	Title      string
	Token      string
	CSRF       string
	AdminEmail string
	Error      string
	Data       any
}

type templateRenderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"shortID": func(id kernel.UUID) string {
		s := id.String()
		return s[len(s)-4:]
	},
	"statusTitle": func(s order.Status) string { return s.Title() },
	"statuses":    order.Statuses,
	"date": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04")
	},
	"uuid": func(id kernel.UUID) string { return id.String() },
}

// newTemplateRenderer parses every page together with the shared layout.
func newTemplateRenderer() (*templateRenderer, error) {
	layout, err := fs.ReadFile(templateFS, "templates/layout.html")
	if err != nil {
		return nil, err
	}

	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &templateRenderer{pages: make(map[string]*template.Template)}
	for _, file := range entries {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == "layout" {
			continue
		}

		body, readErr := fs.ReadFile(templateFS, file)
		if readErr != nil {
			return nil, readErr
		}

		t, parseErr := template.New(name).Funcs(templateFuncs).Parse(string(layout))
		if parseErr == nil {
			_, parseErr = t.Parse(string(body))
		}
		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}
		r.pages[name] = t
	}

	return r, nil
}

func (r *templateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
