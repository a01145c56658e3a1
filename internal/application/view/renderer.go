package view

import (
	"embed"
	"html/template"
	"io"

	"go-weather/internal/application/window"
	"go-weather/internal/domain/entity"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/imageutils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

//go:embed *.html
var templatesFS embed.FS

// Renderer renders the window templates for echo.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Page is the template data for the window.
type Page struct {
	BasePath string
	View     window.View
	Metric   bool
	IconID   string
	IconURI  template.URL
}

// NewPage builds the template data from a window snapshot. An icon that
// cannot be encoded is left out.
func NewPage(basePath string, v window.View) Page {
	page := Page{
		BasePath: basePath,
		View:     v,
		Metric:   v.Units != entity.Imperial,
	}

	if v.Icon != nil && v.Icon.Image != nil {
		uri, err := imageutils.EncodeDataURI(v.Icon.Image)
		if err != nil {
			log.Debug(msg.GetMessage("weather.icon-fail", v.Icon.ID, err), zap.String("icon", v.Icon.ID), zap.Error(err))
			return page
		}
		page.IconID = v.Icon.ID
		page.IconURI = template.URL(uri)
	}

	return page
}
