package icon

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/imageutils"

	"go.uber.org/zap"
)

type iconUseCase struct {
	iconGateway api.IconGateway
}

func NewIconUseCase(iconGateway api.IconGateway) UseCase {
	return &iconUseCase{
		iconGateway: iconGateway,
	}
}

// FetchIcon downloads, decodes and scales the icon; failures are logged and yield nil
func (uc *iconUseCase) FetchIcon(ctx context.Context, iconID string, size int) *entity.IconImage {
	if iconID == "" {
		return nil
	}

	payload, err := uc.iconGateway.GetIcon(ctx, iconID)
	if err != nil {
		log.Debug(msg.GetMessage("weather.icon-fail", iconID, err), zap.String("icon", iconID), zap.Error(err))
		return nil
	}

	img, err := imageutils.DecodeAndResize(payload, size, size)
	if err != nil {
		log.Debug(msg.GetMessage("weather.icon-fail", iconID, err), zap.String("icon", iconID), zap.Error(err))
		return nil
	}

	return &entity.IconImage{ID: iconID, Image: img}
}
