package health

import "go-weather/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}

// StatusSource reports the health of one application component.
type StatusSource interface {
	Health() model.ComponentHealthStatus
}
