package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{"home", "auth", "admin"}

// page is the data every template receives.
type page struct {
	Title string
	Theme Theme
	Flash *Flash
	Path  string
	Data  interface{}
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &renderer{pages: pages}, nil
}

// render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (rd *renderer) render(w http.ResponseWriter, status int, name string, p page) error {
	t, ok := rd.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
