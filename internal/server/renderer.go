package server

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/spacesedan/sentilabel/internal/sentiment"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexView is the data handed to the renderer for the form page. A nil
// TextInput means nothing was submitted; a nil Sentiment means no
// classification ran.
type IndexView struct {
	TextInput *string
	Sentiment *sentiment.Label
}

func (v IndexView) Text() string {
	if v.TextInput == nil {
		return ""
	}
	return *v.TextInput
}

func (v IndexView) HasSentiment() bool {
	return v.Sentiment != nil
}

func (v IndexView) SentimentLabel() string {
	if v.Sentiment == nil {
		return ""
	}
	return v.Sentiment.String()
}

func (v IndexView) SentimentClass() string {
	if v.Sentiment == nil {
		return ""
	}
	return v.Sentiment.Slug()
}

type Renderer interface {
	Render(w io.Writer, view IndexView) error
}

type TemplateRenderer struct {
	tmpl *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &TemplateRenderer{tmpl: tmpl}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, view IndexView) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html", view); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}
