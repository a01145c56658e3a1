package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL        string
	client         *resty.Client
	dismiss404     bool
	defaultHeaders map[string]string
	logger         HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect bool
	Dismiss404     bool
	DefaultHeaders map[string]string
	Timeout        time.Duration
	Logger         HTTPLogger
	Transport      http.RoundTripper
}

// StatusError is returned when the server answers with a non-success status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// DecodeError is returned when a success response body cannot be decoded into the expected type.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response with status %d: %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
// Requests are never retried.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(0)

	if !opts.FollowRedirect {
		client.SetRedirectPolicy(resty.NoRedirectPolicy())
	}
	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		client:         client,
		dismiss404:     opts.Dismiss404,
		defaultHeaders: opts.DefaultHeaders,
		logger:         opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest sends the request and decodes the body into successResp or errorResp depending on the status.
// A transport failure is returned as is; a non-success status yields *StatusError together with the
// decoded errorResp when the body could be decoded, nil otherwise.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	url := hc.buildURL(path)

	req := hc.client.R().
		SetContext(ctx).
		SetHeaders(hc.defaultHeaders).
		SetHeaders(headers)
	if len(queryParams) > 0 {
		req.SetQueryParams(queryParams)
	}

	hc.logger.LogRequest(method, url, queryParams)
	start := time.Now()

	resp, err := req.Execute(method, url)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		// The URL carries the query string, which may hold credentials.
		var urlErr *neturl.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		hc.logger.LogResponseError(method, url, queryParams, 0, "", latency, err)
		return nil, nil, 0, err
	}

	statusCode := resp.StatusCode()
	bodyBytes := resp.Body()

	if statusCode >= 200 && statusCode < 300 {
		hc.logger.LogResponseSuccess(method, url, queryParams, statusCode, latency)
		if successResp != nil {
			if err := unmarshalResponse(bodyBytes, successResp); err != nil {
				return nil, nil, statusCode, &DecodeError{StatusCode: statusCode, Err: err}
			}
		}
		return successResp, nil, statusCode, nil
	}

	if statusCode == http.StatusNotFound && hc.dismiss404 {
		hc.logger.LogResponseSuccess(method, url, queryParams, statusCode, latency)
		return nil, nil, statusCode, nil
	}

	statusErr := &StatusError{StatusCode: statusCode}
	hc.logger.LogResponseError(method, url, queryParams, statusCode, string(bodyBytes), latency, statusErr)

	if errorResp != nil {
		if err := unmarshalResponse(bodyBytes, errorResp); err != nil {
			errorResp = nil
		}
	}

	return nil, errorResp, statusCode, statusErr
}

// unmarshalResponse decodes the body into target. Raw targets (*[]byte, *string) receive the body verbatim.
func unmarshalResponse(bodyBytes []byte, target any) error {
	switch t := target.(type) {
	case *[]byte:
		*t = bodyBytes
		return nil
	case *string:
		*t = string(bodyBytes)
		return nil
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return hc.baseURL + path
}
