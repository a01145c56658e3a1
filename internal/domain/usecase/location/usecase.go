package location

import (
	"context"

	"go-weather/internal/domain/entity"
)

type UseCase interface {
	// ResolveFromText turns trimmed, non-empty input into a place-name query.
	// Empty input yields model.ErrValidation.
	ResolveFromText(input string) (entity.LocationQuery, error)

	// ResolveFromDevice looks up the caller's approximate coordinates by IP.
	// Any failure yields model.ErrLocationUnavailable; it never retries.
	ResolveFromDevice(ctx context.Context) (entity.LocationQuery, error)
}
