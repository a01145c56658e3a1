package window

import (
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatName(current entity.CurrentConditions) string {
	return msg.GetMessage("window.name", current.Name, current.Country)
}

func formatTemperature(current entity.CurrentConditions, units entity.UnitSystem) string {
	return msg.GetMessage("window.temperature",
		numberutils.FormatOptional(current.Temperature),
		units.TemperatureSymbol())
}

func formatDetail(current entity.CurrentConditions, units entity.UnitSystem) string {
	return msg.GetMessage("window.detail",
		numberutils.FormatOptional(current.FeelsLike),
		units.TemperatureSymbol(),
		numberutils.FormatOptional(current.Humidity),
		numberutils.FormatOptional(current.WindSpeed),
		units.SpeedSymbol())
}

// formatForecast renders one newline-terminated line per sample, or the
// unavailable placeholder. An empty forecast renders as empty text.
func formatForecast(forecast model.ForecastResult, units entity.UnitSystem) string {
	if forecast.Unavailable {
		return msg.GetMessage("window.forecast-unavailable")
	}

	var sb strings.Builder
	for _, sample := range forecast.Samples {
		sb.WriteString(msg.GetMessage("window.forecast-line",
			sample.Timestamp,
			numberutils.FormatOptional(sample.Temperature),
			units.TemperatureSymbol(),
			titleCase(sample.Description)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// titleCase upper-cases the first letter of every word, "clear sky" → "Clear Sky".
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
