package entity

import (
	"strconv"
	"strings"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// LocationQuery identifies a location either by place name or by coordinates.
// Exactly one of the two forms is populated.
type LocationQuery struct {
	place       string
	coordinates *Coordinates
}

// NewPlaceQuery creates a place-name query. The name is trimmed; callers must
// not pass an empty name.
func NewPlaceQuery(name string) LocationQuery {
	return LocationQuery{place: strings.TrimSpace(name)}
}

// NewCoordinateQuery creates a coordinate query.
func NewCoordinateQuery(latitude, longitude float64) LocationQuery {
	return LocationQuery{coordinates: &Coordinates{Latitude: latitude, Longitude: longitude}}
}

// IsPlace reports whether the query is a place-name query.
func (q LocationQuery) IsPlace() bool {
	return q.coordinates == nil
}

// IsZero reports whether neither form is populated.
func (q LocationQuery) IsZero() bool {
	return q.coordinates == nil && q.place == ""
}

func (q LocationQuery) Place() string {
	return q.place
}

// Coordinates returns the coordinate pair and whether the query holds one.
func (q LocationQuery) Coordinates() (Coordinates, bool) {
	if q.coordinates == nil {
		return Coordinates{}, false
	}
	return *q.coordinates, true
}

// QueryParams returns the provider query parameters for the location:
// q for a place name, lat and lon for coordinates.
func (q LocationQuery) QueryParams() map[string]string {
	if q.coordinates != nil {
		return map[string]string{
			"lat": strconv.FormatFloat(q.coordinates.Latitude, 'f', -1, 64),
			"lon": strconv.FormatFloat(q.coordinates.Longitude, 'f', -1, 64),
		}
	}
	return map[string]string{"q": q.place}
}

func (q LocationQuery) String() string {
	if q.coordinates != nil {
		return strconv.FormatFloat(q.coordinates.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(q.coordinates.Longitude, 'f', -1, 64)
	}
	return q.place
}
