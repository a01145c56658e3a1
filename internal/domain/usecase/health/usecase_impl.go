package health

import (
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	window StatusSource
}

func NewHealthUseCase(window StatusSource) UseCase {
	return &healthUseCase{
		window: window,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	windowHealth := useCase.window.Health()

	overallStatus := model.StatusUp
	if windowHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Window: windowHealth,
	}
}
