package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/i18n"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// HTMLRenderer renders a bundle as a printable HTML page. Everything taken
// from the bundle is escaped by html/template.
type HTMLRenderer struct {
	tmpl *template.Template
}

var _ Renderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer parses the embedded report template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("report.html.tmpl").
		Funcs(funcs(i18n.English)).
		ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

type htmlData struct {
	Bundle
	Lang i18n.Language
}

// Render implements Renderer. An unsupported language renders in English.
func (r *HTMLRenderer) Render(w io.Writer, b Bundle, lang i18n.Language) error {
	if !i18n.IsSupported(lang) {
		lang = i18n.English
	}

	tmpl, err := r.tmpl.Clone()
	if err != nil {
		return fmt.Errorf("failed to clone report template: %w", err)
	}

	if err := tmpl.Funcs(funcs(lang)).Execute(w, htmlData{Bundle: b, Lang: lang}); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// funcs binds the template helpers to lang.
func funcs(lang i18n.Language) template.FuncMap {
	tr := i18n.New(lang)

	return template.FuncMap{
		"t": tr.T,
		"longDate": func(t time.Time) string {
			return i18n.LongDate(lang, t)
		},
		"shortDate": func(key string) string {
			d, err := domain.ParseDateKey(key)
			if err != nil {
				return key
			}
			return i18n.ShortDate(lang, d)
		},
		"side": func(s domain.BreastSide) string {
			if s == domain.BreastRight {
				return tr.T("rightBreast")
			}
			return tr.T("leftBreast")
		},
		"records": func(n int) string {
			if n == 1 {
				return strconv.Itoa(n) + " " + tr.T("record")
			}
			return strconv.Itoa(n) + " " + tr.T("records")
		},
		"quantity": func(q *domain.Quantity) string {
			return strconv.FormatFloat(q.Amount, 'f', -1, 64) + string(q.Unit)
		},
	}
}
