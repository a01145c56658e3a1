package entity

// UnitSystem selects the provider's measurement units and the display suffixes.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// ParseUnitSystem maps the provider value to a UnitSystem. Anything other than
// "imperial" is metric.
func ParseUnitSystem(value string) UnitSystem {
	if UnitSystem(value) == Imperial {
		return Imperial
	}
	return Metric
}

func (u UnitSystem) String() string {
	return string(u)
}

// TemperatureSymbol returns °C for metric and °F for imperial.
func (u UnitSystem) TemperatureSymbol() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// SpeedSymbol returns m/s for metric and mph for imperial.
func (u UnitSystem) SpeedSymbol() string {
	if u == Imperial {
		return "mph"
	}
	return "m/s"
}
