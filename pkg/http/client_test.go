package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type samplePayload struct {
	Name string `json:"name"`
}

type sampleError struct {
	Message string `json:"message"`
}

type recordingLogger struct {
	requests  int
	successes int
	failures  int
	lastQuery map[string]string
}

func (l *recordingLogger) LogRequest(_, _ string, queryParams map[string]string) {
	l.requests++
	l.lastQuery = queryParams
}

func (l *recordingLogger) LogResponseSuccess(string, string, map[string]string, int, int64) {
	l.successes++
}

func (l *recordingLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {
	l.failures++
}

func TestExecute_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/weather" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "São Paulo" {
			t.Errorf("expected escaped query to round-trip, got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("expected default header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL+"/data/", ClientOptions{
		DefaultHeaders: map[string]string{"Accept": "application/json"},
		Logger:         logger,
	})

	successResp, errResp, status, err := client.Request().
		WithPath("weather").
		WithQueryParams(map[string]string{"q": "São Paulo"}).
		WithSuccessResp(&samplePayload{}).
		WithErrorResp(&sampleError{}).
		Execute()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errResp != nil {
		t.Errorf("expected nil error response, got %v", errResp)
	}
	if status != http.StatusOK {
		t.Errorf("expected 200, got %d", status)
	}
	if got := successResp.(*samplePayload).Name; got != "ok" {
		t.Errorf("expected name ok, got %q", got)
	}
	if logger.requests != 1 || logger.successes != 1 || logger.failures != 0 {
		t.Errorf("unexpected logger calls: %+v", logger)
	}
}

func TestExecute_ErrorStatusDecodesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, errResp, status, err := client.Request().
		WithPath("/weather").
		WithSuccessResp(&samplePayload{}).
		WithErrorResp(&sampleError{}).
		Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if status != http.StatusNotFound || statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d / %d", status, statusErr.StatusCode)
	}
	if errResp == nil {
		t.Fatal("expected decoded error response")
	}
	if got := errResp.(*sampleError).Message; got != "city not found" {
		t.Errorf("expected provider message, got %q", got)
	}
}

func TestExecute_ErrorStatusWithUndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, errResp, status, err := client.Request().
		WithErrorResp(&sampleError{}).
		Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if status != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", status)
	}
	if errResp != nil {
		t.Errorf("expected nil error response for non-JSON body, got %v", errResp)
	}
}

func TestExecute_Dismiss404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Dismiss404: true})

	successResp, errResp, status, err := client.Request().WithSuccessResp(&samplePayload{}).Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if successResp != nil || errResp != nil || status != http.StatusNotFound {
		t.Errorf("expected dismissed 404, got %v %v %d", successResp, errResp, status)
	}
}

func TestExecute_MalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("invalid json {"))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, _, _, err := client.Request().WithSuccessResp(&samplePayload{}).Execute()

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
}

func TestExecute_RawBody(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	var body []byte
	_, _, _, err := client.Request().WithPath("/01d@2x.png").WithSuccessResp(&body).Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != string(payload) {
		t.Errorf("expected raw body, got %v", body)
	}
}

func TestExecute_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL, ClientOptions{Timeout: 50 * time.Millisecond, Logger: logger})

	_, _, status, err := client.Request().WithSuccessResp(&samplePayload{}).Execute()
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("expected transport error, got status error %v", err)
	}
	if status != 0 {
		t.Errorf("expected status 0 on transport failure, got %d", status)
	}
	if logger.failures != 1 {
		t.Errorf("expected one failure log, got %d", logger.failures)
	}
}

func TestExecute_TransportErrorOmitsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHttpClient(url, ClientOptions{})

	_, _, _, err := client.Request().
		WithQueryParams(map[string]string{"appid": "secret-key"}).
		Execute()
	if err == nil {
		t.Fatal("expected connection error, got nil")
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("expected query to be left out of the error, got %q", err.Error())
	}
}

func TestExecute_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, _, err := client.Request().WithContext(ctx).Execute(); err == nil {
		t.Fatal("expected error for canceled context, got nil")
	}
}

func TestZapLogger_MasksSensitiveParams(t *testing.T) {
	logger := NewZapLogger("appid")
	query := map[string]string{"appid": "secret", "q": "Bengaluru"}

	masked := logger.mask(query)
	if masked["appid"] != "***" {
		t.Errorf("expected appid to be masked, got %q", masked["appid"])
	}
	if masked["q"] != "Bengaluru" {
		t.Errorf("expected q to be kept, got %q", masked["q"])
	}
	if query["appid"] != "secret" {
		t.Error("expected original map to be left untouched")
	}
}
