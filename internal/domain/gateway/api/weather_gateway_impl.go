package api

import (
	"context"
	"errors"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/msg"
)

const (
	currentWeatherPath = "/weather"
	forecastPath       = "/forecast"
)

// weatherGatewayImpl implements the WeatherGateway interface against OpenWeather
type weatherGatewayImpl struct {
	apiKey     string
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &weatherGatewayImpl{
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// GetCurrentWeather gets the current conditions for a place name or coordinates
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) (*external.CurrentWeatherResponse, error) {
	successResp, err := w.get(ctx, currentWeatherPath, location, units, &external.CurrentWeatherResponse{})
	if err != nil {
		return nil, err
	}
	return successResp.(*external.CurrentWeatherResponse), nil
}

// GetForecast gets the short-interval forecast for a place name or coordinates
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) (*external.ForecastResponse, error) {
	successResp, err := w.get(ctx, forecastPath, location, units, &external.ForecastResponse{})
	if err != nil {
		return nil, err
	}
	return successResp.(*external.ForecastResponse), nil
}

// get issues the request with either q or lat/lon, never both, and maps failures
// to *model.ProviderError or *model.NetworkError
func (w *weatherGatewayImpl) get(ctx context.Context, path string, location entity.LocationQuery, units entity.UnitSystem, target any) (any, error) {
	queryParams := location.QueryParams()
	queryParams["appid"] = w.apiKey
	queryParams["units"] = units.String()

	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(queryParams).
		WithSuccessResp(target).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp, nil
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		message := msg.GetMessage("weather.provider-generic", statusErr.StatusCode)
		if errResp != nil {
			if providerMessage := errResp.(*external.APIErrorResponse).MessageText(); providerMessage != "" {
				message = providerMessage
			}
		}
		return nil, &model.ProviderError{StatusCode: statusErr.StatusCode, Message: message}
	}

	return nil, &model.NetworkError{Endpoint: path, Err: err}
}
