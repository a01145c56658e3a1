package entity

// CurrentConditions holds the current weather for one location. Numeric
// fields are nil when the provider omitted them.
type CurrentConditions struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Temperature *float64 `json:"temperature"`
	FeelsLike   *float64 `json:"feelsLike"`
	Humidity    *float64 `json:"humidity"`
	WindSpeed   *float64 `json:"windSpeed"`
	IconID      string   `json:"iconId"`
}
