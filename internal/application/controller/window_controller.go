package controller

import (
	"net/http"

	"go-weather/internal/application/view"
	"go-weather/internal/application/window"
	"go-weather/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type WindowController struct {
	api      *echo.Group
	session  *window.Session
	basePath string
}

func NewWindowController(api *echo.Group, session *window.Session, basePath string) *WindowController {
	return &WindowController{api: api, session: session, basePath: basePath}
}

// InitWindowRoutes initializes the window page and its two actions
func (controller *WindowController) InitWindowRoutes() {
	controller.api.GET("/", controller.Show)
	controller.api.POST("/weather", controller.GetWeather)
	controller.api.POST("/weather/location", controller.UseMyLocation)
}

// Show renders the current window. A pending notice is shown once.
func (controller *WindowController) Show(c echo.Context) error {
	page := view.NewPage(controller.basePath, controller.session.Window().View())
	return c.Render(http.StatusOK, "window.html", page)
}

// GetWeather runs a lookup for the typed city and redirects back to the window.
func (controller *WindowController) GetWeather(c echo.Context) error {
	city := c.FormValue("city")
	units := entity.ParseUnitSystem(c.FormValue("units"))

	controller.session.GetWeather(c.Request().Context(), city, units)
	return controller.backToWindow(c)
}

// UseMyLocation runs a lookup for the IP-derived location and redirects back to the window.
func (controller *WindowController) UseMyLocation(c echo.Context) error {
	units := entity.ParseUnitSystem(c.FormValue("units"))

	controller.session.UseMyLocation(c.Request().Context(), units)
	return controller.backToWindow(c)
}

func (controller *WindowController) backToWindow(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, controller.basePath+"/")
}
