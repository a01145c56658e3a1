package external

import (
	"bytes"
	"encoding/json"
	"strings"
)

// CurrentWeatherResponse represents the response from the OpenWeather current weather API.
// Numeric fields are pointers so absent values can be told apart from zero.
type CurrentWeatherResponse struct {
	Name    string                `json:"name"`
	Sys     SysDTO                `json:"sys"`
	Weather []WeatherConditionDTO `json:"weather"`
	Main    MainDTO               `json:"main"`
	Wind    WindDTO               `json:"wind"`
}

// SysDTO holds the country code of the location
type SysDTO struct {
	Country string `json:"country"`
}

// WeatherConditionDTO represents a single weather condition
type WeatherConditionDTO struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds temperature and humidity readings
type MainDTO struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *float64 `json:"humidity"`
}

// WindDTO holds wind readings
type WindDTO struct {
	Speed *float64 `json:"speed"`
}

// ForecastResponse represents the response from the OpenWeather 5 day / 3 hour forecast API
type ForecastResponse struct {
	List []ForecastItemDTO `json:"list"`
}

// ForecastItemDTO represents one forecast step
type ForecastItemDTO struct {
	DtTxt   string                `json:"dt_txt"`
	Main    MainDTO               `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
}

// APIErrorResponse represents error responses from the OpenWeather API.
// Message is kept raw because the provider does not always send a string.
type APIErrorResponse struct {
	Cod     any             `json:"cod"`
	Message json.RawMessage `json:"message"`
}

// MessageText returns the provider message as display text: strings
// unquoted, any other JSON value as sent, empty when absent or null.
func (r *APIErrorResponse) MessageText() string {
	raw := bytes.TrimSpace(r.Message)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}
	return string(raw)
}
