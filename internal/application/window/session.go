package window

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/location"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome is the result of one user action: either a report to render or a
// notice to show. Exactly one of the two is set.
type Outcome struct {
	RequestID string
	Report    *model.WeatherReport
	Notice    *Notice
}

// resolveFunc produces the location for one request.
type resolveFunc func(ctx context.Context) (entity.LocationQuery, error)

// Session runs user actions against the window, one at a time. An action
// arriving while another is in flight is rejected with a busy notice.
type Session struct {
	busy     sync.Mutex
	inFlight atomic.Bool

	window          *Window
	locationUseCase location.UseCase
	weatherUseCase  weather.UseCase
}

func NewSession(window *Window, locationUseCase location.UseCase, weatherUseCase weather.UseCase) *Session {
	return &Session{
		window:          window,
		locationUseCase: locationUseCase,
		weatherUseCase:  weatherUseCase,
	}
}

// Window returns the window driven by the session.
func (s *Session) Window() *Window {
	return s.window
}

// GetWeather looks up the weather for the text typed by the user.
func (s *Session) GetWeather(ctx context.Context, input string, units entity.UnitSystem) Outcome {
	s.window.SetInput(input, units)

	return s.run(ctx, units, func(context.Context) (entity.LocationQuery, error) {
		return s.locationUseCase.ResolveFromText(input)
	})
}

// UseMyLocation looks up the weather for the device's approximate location.
func (s *Session) UseMyLocation(ctx context.Context, units entity.UnitSystem) Outcome {
	s.window.SetUnits(units)

	return s.run(ctx, units, s.locationUseCase.ResolveFromDevice)
}

// Health reports the window state and whether a request is in flight.
func (s *Session) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"state":     string(s.window.State()),
			"in_flight": strconv.FormatBool(s.inFlight.Load()),
		},
	}
}

func (s *Session) run(ctx context.Context, units entity.UnitSystem, resolve resolveFunc) Outcome {
	requestID := uuid.New().String()

	if !s.busy.TryLock() {
		outcome := Outcome{RequestID: requestID, Notice: &Notice{
			Title: msg.GetMessage("notice.busy.title"),
			Text:  msg.GetMessage("notice.busy.text"),
		}}
		log.Info(msg.GetMessage("weather.lookup-rejected"), zap.String("request_id", requestID))
		s.window.Apply(outcome)
		return outcome
	}
	defer s.busy.Unlock()

	s.inFlight.Store(true)
	defer s.inFlight.Store(false)

	outcome := s.lookup(ctx, requestID, units, resolve)
	s.window.Apply(outcome)
	return outcome
}

// lookup resolves the location and fetches the weather. It never touches the window.
func (s *Session) lookup(ctx context.Context, requestID string, units entity.UnitSystem, resolve resolveFunc) Outcome {
	query, err := resolve(ctx)
	if err != nil {
		return failed(requestID, err)
	}

	log.Info(msg.GetMessage("weather.lookup-start", query, units),
		zap.String("request_id", requestID),
		zap.String("location", query.String()),
		zap.String("units", units.String()),
	)

	report, err := s.weatherUseCase.Lookup(ctx, query, units)
	if err != nil {
		return failed(requestID, err)
	}

	log.Info(msg.GetMessage("weather.lookup-done", report.Current.Name, report.Current.Country),
		zap.String("request_id", requestID),
		zap.Bool("icon", report.Icon != nil),
		zap.Int("forecast_samples", len(report.Forecast.Samples)),
		zap.Bool("forecast_unavailable", report.Forecast.Unavailable),
	)

	return Outcome{RequestID: requestID, Report: report}
}

// failed logs a failed lookup and turns it into a notice outcome.
func failed(requestID string, err error) Outcome {
	notice := noticeFor(err)
	log.Warn(msg.GetMessage("weather.lookup-fail", notice.Title, err),
		zap.String("request_id", requestID),
		zap.String("notice", notice.Title),
		zap.Error(err),
	)
	return Outcome{RequestID: requestID, Notice: notice}
}

// noticeFor maps a failure to the most specific notice available.
func noticeFor(err error) *Notice {
	var providerErr *model.ProviderError
	var networkErr *model.NetworkError

	switch {
	case errors.Is(err, model.ErrValidation):
		return &Notice{
			Title: msg.GetMessage("notice.input-needed.title"),
			Text:  msg.GetMessage("notice.input-needed.text"),
		}
	case errors.Is(err, model.ErrLocationUnavailable):
		return &Notice{
			Title: msg.GetMessage("notice.location-failed.title"),
			Text:  msg.GetMessage("notice.location-failed.text"),
		}
	case errors.As(err, &providerErr):
		return &Notice{
			Title: msg.GetMessage("notice.api-error.title"),
			Text:  providerErr.Message,
		}
	case errors.As(err, &networkErr):
		return &Notice{
			Title: msg.GetMessage("notice.network-error.title"),
			Text:  networkErr.Err.Error(),
		}
	default:
		return &Notice{
			Title: msg.GetMessage("notice.network-error.title"),
			Text:  err.Error(),
		}
	}
}
