package api

import (
	"context"

	"go-weather/internal/domain/model/external"
)

// GeolocationGateway defines the interface for the IP geolocation lookup
type GeolocationGateway interface {
	// Locate returns the approximate location of the caller's public IP
	Locate(ctx context.Context) (*external.GeolocationResponse, error)
}
