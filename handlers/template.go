package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/missing.svg
var missingThumbnailSVG []byte

const (
	instancesTemplate = "instances.html"
	previewTemplate   = "instance-preview.html"
)

// instancesPageData feeds templates/instances.html.
// Placeholder is the renderer output and is inserted without further escaping.
type instancesPageData struct {
	PlaceholderID string
	PreviewTarget string
	Placeholder   template.HTML
}

// previewPageData feeds templates/instance-preview.html.
type previewPageData struct {
	Domain string
}

// TemplateRenderer implements echo.Renderer over the embedded page templates.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses the embedded templates.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("can't parse page templates: %w", err)
	}
	return &TemplateRenderer{templates: t}, nil
}

// Render executes the named template.
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
