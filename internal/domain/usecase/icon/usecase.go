package icon

import (
	"context"

	"go-weather/internal/domain/entity"
)

type UseCase interface {
	// FetchIcon downloads, decodes and scales the icon to size×size.
	// It returns nil when the icon is unavailable for any reason.
	FetchIcon(ctx context.Context, iconID string, size int) *entity.IconImage
}
