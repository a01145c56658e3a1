package location

import (
	"context"
	"fmt"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

const geolocationSuccess = "success"

type locationUseCase struct {
	geolocationGateway api.GeolocationGateway
}

func NewLocationUseCase(geolocationGateway api.GeolocationGateway) UseCase {
	return &locationUseCase{
		geolocationGateway: geolocationGateway,
	}
}

// ResolveFromText turns trimmed, non-empty input into a place-name query
func (uc *locationUseCase) ResolveFromText(input string) (entity.LocationQuery, error) {
	place := strings.TrimSpace(input)
	if place == "" {
		return entity.LocationQuery{}, model.ErrValidation
	}
	return entity.NewPlaceQuery(place), nil
}

// ResolveFromDevice looks up the caller's approximate coordinates by IP
func (uc *locationUseCase) ResolveFromDevice(ctx context.Context) (entity.LocationQuery, error) {
	resp, err := uc.geolocationGateway.Locate(ctx)
	if err != nil {
		return entity.LocationQuery{}, uc.unavailable(err)
	}

	if resp.Status != "" && resp.Status != geolocationSuccess {
		return entity.LocationQuery{}, uc.unavailable(fmt.Errorf("status %q: %s", resp.Status, resp.Message))
	}

	if resp.Lat == nil || resp.Lon == nil {
		return entity.LocationQuery{}, uc.unavailable(fmt.Errorf("response without lat/lon"))
	}

	return entity.NewCoordinateQuery(*resp.Lat, *resp.Lon), nil
}

func (uc *locationUseCase) unavailable(cause error) error {
	log.Warn(msg.GetMessage("weather.location-fail", cause), zap.Error(cause))
	return fmt.Errorf("%w: %v", model.ErrLocationUnavailable, cause)
}
