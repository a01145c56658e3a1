package entity

// ForecastSample is one short-interval forecast entry.
type ForecastSample struct {
	Timestamp   string   `json:"timestamp"`
	Temperature *float64 `json:"temperature"`
	Description string   `json:"description"`
}
