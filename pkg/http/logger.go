package http

import (
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string, queryParams map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, queryParams map[string]string, httpStatus int, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or an error HTTP status
	LogResponseError(method, url string, queryParams map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, int, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {}

// ZapLogger logs outbound calls through the application logger. Query
// parameters named in SensitiveParams are masked.
type ZapLogger struct {
	SensitiveParams []string
}

// NewZapLogger creates an HTTPLogger that masks the given query parameters.
func NewZapLogger(sensitiveParams ...string) *ZapLogger {
	return &ZapLogger{SensitiveParams: sensitiveParams}
}

func (l *ZapLogger) LogRequest(method, url string, queryParams map[string]string) {
	log.Debug(msg.GetMessage("http.request", method, url),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("query", l.mask(queryParams)),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, url string, queryParams map[string]string, httpStatus int, latency int64) {
	log.Info(msg.GetMessage("http.response", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("query", l.mask(queryParams)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *ZapLogger) LogResponseError(method, url string, queryParams map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn(msg.GetMessage("http.response-fail", method, url, httpStatus, latency, err),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("query", l.mask(queryParams)),
		zap.Int("status", httpStatus),
		zap.String("response_body", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err),
	)
}

func (l *ZapLogger) mask(queryParams map[string]string) map[string]string {
	if len(queryParams) == 0 {
		return nil
	}

	masked := make(map[string]string, len(queryParams))
	for key, value := range queryParams {
		masked[key] = value
	}
	for _, key := range l.SensitiveParams {
		if _, ok := masked[key]; ok {
			masked[key] = "***"
		}
	}
	return masked
}
