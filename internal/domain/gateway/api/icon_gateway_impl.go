package api

import (
	"context"
	"fmt"
	"net/url"

	"go-weather/pkg/http"
)

// iconGatewayImpl implements the IconGateway interface against the OpenWeather icon host
type iconGatewayImpl struct {
	httpClient *http.Client
}

// NewIconGateway creates a new instance of IconGateway with HTTP client
func NewIconGateway(baseUrl string, clientOptions http.ClientOptions) IconGateway {
	return &iconGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetIcon downloads the PNG payload for a provider icon code
func (i *iconGatewayImpl) GetIcon(ctx context.Context, iconID string) ([]byte, error) {
	path := fmt.Sprintf("/%s@2x.png", url.PathEscape(iconID))

	var payload []byte
	_, _, _, err := i.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithHeaders(map[string]string{"Accept": "image/png"}).
		WithSuccessResp(&payload).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("icon %s download failed: %w", iconID, err)
	}

	return payload, nil
}
