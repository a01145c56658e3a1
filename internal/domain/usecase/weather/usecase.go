package weather

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

type UseCase interface {
	// FetchCurrent returns the current conditions for the location
	FetchCurrent(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) (*entity.CurrentConditions, error)

	// FetchForecast returns at most the first configured number of forecast samples, in provider order
	FetchForecast(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) ([]entity.ForecastSample, error)

	// Lookup fetches current conditions, icon and forecast. Only a current
	// conditions failure is returned as an error; icon and forecast failures
	// are carried in the report.
	Lookup(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) (*model.WeatherReport, error)
}
