package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/logging"
	"github.com/plantkeeper/plantkeeper/internal/timex"
)

//go:embed views/*.html
var viewsFS embed.FS

// templateRenderer renders into a buffer first so a mid-template failure
// never leaves a half-written response on the wire.
type templateRenderer struct {
	templates *template.Template
	log       logging.Logger
}

func (t *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	var buf bytes.Buffer
	if err := t.templates.ExecuteTemplate(&buf, name, data); err != nil {
		t.log.Error(c.Request().Context(), "template execution failed", "template", name, "error", err)
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func newTemplateRenderer(log logging.Logger) (*templateRenderer, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(viewsFS, "views/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &templateRenderer{templates: tmpl, log: log}, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"fmtDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(timex.DateLayout)
		},
		"fmtCivil": func(d timex.Date) string {
			return d.String()
		},
		"taskTypes":  models.TaskTypes,
		"priorities": func() []models.Priority { return []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} },
	}
}
