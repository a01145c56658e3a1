package api

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

// WeatherGateway defines the interface for the weather provider's API calls
type WeatherGateway interface {
	// GetCurrentWeather gets the current conditions for a place name or coordinates
	GetCurrentWeather(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) (*external.CurrentWeatherResponse, error)

	// GetForecast gets the short-interval forecast for a place name or coordinates
	GetForecast(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) (*external.ForecastResponse, error)
}
