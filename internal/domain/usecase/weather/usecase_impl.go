package weather

import (
	"context"
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/internal/domain/usecase/icon"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"

	"go.uber.org/zap"
)

type weatherUseCase struct {
	forecastSamples int
	iconSize        int
	apiGateway      api.WeatherGateway
	iconUseCase     icon.UseCase
}

func NewWeatherUseCase(forecastSamples int, iconSize int, apiGateway api.WeatherGateway, iconUseCase icon.UseCase) UseCase {
	return &weatherUseCase{
		forecastSamples: forecastSamples,
		iconSize:        iconSize,
		apiGateway:      apiGateway,
		iconUseCase:     iconUseCase,
	}
}

// FetchCurrent returns the current conditions for the location
func (uc *weatherUseCase) FetchCurrent(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) (*entity.CurrentConditions, error) {
	if location.IsZero() {
		return nil, model.ErrValidation
	}

	resp, err := uc.apiGateway.GetCurrentWeather(ctx, location, units)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current conditions: %w", err)
	}

	return toCurrentConditions(resp), nil
}

// FetchForecast returns at most the first configured number of forecast samples
func (uc *weatherUseCase) FetchForecast(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) ([]entity.ForecastSample, error) {
	if location.IsZero() {
		return nil, model.ErrValidation
	}

	resp, err := uc.apiGateway.GetForecast(ctx, location, units)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	items := resp.List
	if len(items) > uc.forecastSamples {
		items = items[:uc.forecastSamples]
	}

	samples := make([]entity.ForecastSample, 0, len(items))
	for _, item := range items {
		samples = append(samples, toForecastSample(item))
	}
	return samples, nil
}

// Lookup fetches current conditions, then the icon, then the forecast
func (uc *weatherUseCase) Lookup(ctx context.Context, location entity.LocationQuery, units entity.UnitSystem) (*model.WeatherReport, error) {
	current, err := uc.FetchCurrent(ctx, location, units)
	if err != nil {
		log.Warn(msg.GetMessage("weather.current-fail", err), zap.String("location", location.String()), zap.Error(err))
		return nil, err
	}

	report := &model.WeatherReport{
		Units:   units,
		Current: *current,
		Icon:    uc.iconUseCase.FetchIcon(ctx, current.IconID, uc.iconSize),
	}

	samples, err := uc.FetchForecast(ctx, location, units)
	if err != nil {
		log.Warn(msg.GetMessage("weather.forecast-fail", err), zap.String("location", location.String()), zap.Error(err))
		report.Forecast = model.ForecastResult{Unavailable: true}
	} else {
		report.Forecast = model.ForecastResult{Samples: samples}
	}

	return report, nil
}

func toCurrentConditions(resp *external.CurrentWeatherResponse) *entity.CurrentConditions {
	current := &entity.CurrentConditions{
		Name:        resp.Name,
		Country:     resp.Sys.Country,
		Temperature: resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
	}

	if len(resp.Weather) > 0 {
		current.Description = resp.Weather[0].Description
		current.IconID = resp.Weather[0].Icon
	}

	return current
}

func toForecastSample(item external.ForecastItemDTO) entity.ForecastSample {
	sample := entity.ForecastSample{
		Timestamp:   item.DtTxt,
		Temperature: item.Main.Temp,
	}
	if sample.Timestamp == "" {
		sample.Timestamp = numberutils.Placeholder
	}
	if len(item.Weather) > 0 {
		sample.Description = item.Weather[0].Description
	}
	return sample
}
