package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/a11y-lab/statements/pkg/controller/http/templates"
	"github.com/a11y-lab/statements/pkg/domain/model/auth"
	"github.com/a11y-lab/statements/pkg/utils/errutil"
	"github.com/a11y-lab/statements/pkg/utils/safe"
)

// PageData is the data passed to every page template
type PageData struct {
	Title  string
	User   *auth.Token
	Admin  bool
	Errors []string
	CSRF   string
	Data   any
}

// Renderer renders the embedded HTML templates
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"deref": func(b *bool) bool {
			if b == nil {
				return false
			}
			return *b
		},
		"deref64": func(i *int64) int64 {
			if i == nil {
				return 0
			}
			return *i
		},
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templates.Files, "*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse templates")
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the named page template. The template is executed into a
// buffer first so a render failure never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, data *PageData) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		errutil.HandleHTTP(req.Context(), w, goerr.Wrap(err, "failed to render template", goerr.V("template", name)), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	safe.Write(req.Context(), w, buf.Bytes())
}

// NotFound renders the 404 page
func (r *Renderer) NotFound(w http.ResponseWriter, req *http.Request, data *PageData) {
	data.Title = "Not found"
	r.Render(w, req, http.StatusNotFound, "notfound", data)
}
