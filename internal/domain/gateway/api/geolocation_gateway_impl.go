package api

import (
	"context"
	"fmt"

	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

// geolocationGatewayImpl implements the GeolocationGateway interface against ip-api.com
type geolocationGatewayImpl struct {
	path       string
	httpClient *http.Client
}

// NewGeolocationGateway creates a new instance of GeolocationGateway with HTTP client
func NewGeolocationGateway(baseUrl string, path string, clientOptions http.ClientOptions) GeolocationGateway {
	return &geolocationGatewayImpl{
		path:       path,
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// Locate returns the approximate location of the caller's public IP
func (g *geolocationGatewayImpl) Locate(ctx context.Context) (*external.GeolocationResponse, error) {
	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(g.path).
		WithSuccessResp(&external.GeolocationResponse{}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("geolocation lookup failed: %w", err)
	}

	return successResp.(*external.GeolocationResponse), nil
}
