package model

import "go-weather/internal/domain/entity"

// ForecastResult is the outcome of the forecast request. Unavailable is set
// when the request failed; an empty Samples slice with Unavailable unset is a
// valid, empty forecast.
type ForecastResult struct {
	Samples     []entity.ForecastSample
	Unavailable bool
}

// WeatherReport is everything one successful lookup produces for display.
// Icon is nil when no icon could be fetched.
type WeatherReport struct {
	Units    entity.UnitSystem
	Current  entity.CurrentConditions
	Icon     *entity.IconImage
	Forecast ForecastResult
}
