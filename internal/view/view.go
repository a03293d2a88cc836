// Package view renders the HTML pages of the application.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

// Page names.
const (
	PageURLsIndex string = "urls_index"
	PageURLsNew   string = "urls_new"
	PageURLsShow  string = "urls_show"
	PageRegister  string = "register"
	PageLogin     string = "login"

	headerFile string = "templates/header.html"
)

var pages = []string{PageURLsIndex, PageURLsNew, PageURLsShow, PageRegister, PageLogin}

//go:embed templates/*.html
var templatesFS embed.FS

// Header is shown on every page. Empty Email means nobody is logged in.
type Header struct {
	Email string
}

type URL struct {
	ID       string
	LongURL  string
	ShortURL string
}

type URLsIndex struct {
	Header Header
	URLs   []URL
}

type URLsNew struct {
	Header Header
}

type URLsShow struct {
	Header Header
	URL    URL
	QRCode template.URL
}

type Register struct {
	Header Header
}

type Login struct {
	Header Header
}

// Renderer holds parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templatesFS, "templates/"+page+".html", headerFile)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render executes page with data. Nothing is written to w if execution fails.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	buf := &bytes.Buffer{}
	if err := t.ExecuteTemplate(buf, page+".html", data); err != nil {
		return fmt.Errorf("render page %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
