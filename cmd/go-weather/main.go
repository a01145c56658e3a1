package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-weather/configs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/view"
	"go-weather/internal/application/window"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/icon"
	"go-weather/internal/domain/usecase/location"
	"go-weather/internal/domain/usecase/weather"
	pkghttp "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"

	"github.com/labstack/echo/v4"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

func main() {
	env, err := configs.Load()
	if err != nil {
		if errors.Is(err, configs.ErrMissingCredential) {
			fmt.Fprintln(os.Stderr, msg.GetMessage("app.missing-credential"))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	log.Init(env.ApplicationName, env.LogLevel)
	defer log.Sync()

	if env.PropertiesPath != "" {
		err = resource.Init(env.PropertiesPath)
	} else {
		err = resource.InitFromBytes(configs.Properties)
	}
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Info(msg.GetMessage("app.start", env.ApplicationName))

	// Init Gateways
	httpLogger := pkghttp.NewZapLogger("appid")
	defaultHeaders := map[string]string{"User-Agent": env.ApplicationName}
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("openweather.base-url"),
		env.APIKey,
		pkghttp.ClientOptions{
			FollowRedirect: true,
			DefaultHeaders: defaultHeaders,
			Timeout:        resource.GetDurationOrDefault("openweather.timeout", 10*time.Second),
			Logger:         httpLogger,
		})
	iconGateway := api.NewIconGateway(
		resource.GetString("openweather.icon-url"),
		pkghttp.ClientOptions{
			FollowRedirect: true,
			DefaultHeaders: defaultHeaders,
			Timeout:        resource.GetDurationOrDefault("openweather.icon-timeout", 8*time.Second),
			Logger:         httpLogger,
		})
	geolocationGateway := api.NewGeolocationGateway(
		resource.GetString("geolocation.url"),
		resource.GetStringOrDefault("geolocation.path", "/json/"),
		pkghttp.ClientOptions{
			FollowRedirect: true,
			DefaultHeaders: defaultHeaders,
			Timeout:        resource.GetDurationOrDefault("geolocation.timeout", 6*time.Second),
			Logger:         httpLogger,
		})

	// Init UseCase
	iconUseCase := icon.NewIconUseCase(iconGateway)
	weatherUseCase := weather.NewWeatherUseCase(
		resource.GetIntOrDefault("openweather.forecast-samples", 5),
		resource.GetIntOrDefault("openweather.icon-size", 100),
		weatherGateway,
		iconUseCase)
	locationUseCase := location.NewLocationUseCase(geolocationGateway)

	// Init Window
	appWindow := window.NewWindow(
		resource.GetStringOrDefault("app.window.title", "Weather App"),
		resource.GetStringOrDefault("app.window.default-city", "Bengaluru"))
	session := window.NewSession(appWindow, locationUseCase, weatherUseCase)
	healthUseCase := health.NewHealthUseCase(session)

	// Init infra
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal(err.Error())
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	middleware.SetupRequestLogger(e)

	basePath := resource.GetString("app.server.context-path")
	router := e.Group(basePath)

	// Init Controller
	healthController := controller.NewHealthController(router, healthUseCase)
	windowController := controller.NewWindowController(router, session, basePath)

	// Init Routes
	healthController.InitHealthRoutes()
	windowController.InitWindowRoutes()

	listener, err := net.Listen("tcp", resource.GetStringOrDefault("app.server.address", "127.0.0.1:8765"))
	if err != nil {
		log.Fatal(err.Error())
	}
	e.Listener = listener

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start Routes
	go func() {
		if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error())
		}
	}()

	windowURL := "http://" + listener.Addr().String() + basePath + "/"
	log.Info(msg.GetMessage("app.started", windowURL), zap.String("url", windowURL))

	if resource.GetBool("app.window.open-browser") {
		go openBrowser(windowURL)
	}

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error(), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}

var openURL = browser.OpenURL

// openBrowser shows the window in the desktop's default browser. The launcher
// output is discarded so it does not interleave with the JSON log.
func openBrowser(url string) {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	if err := openURL(url); err != nil {
		log.Warn(msg.GetMessage("app.browser-open-fail", url, err), zap.Error(err))
	}
}
