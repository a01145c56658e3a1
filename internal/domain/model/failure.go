package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when the user input cannot form a location query.
	ErrValidation = errors.New("location input is empty")

	// ErrLocationUnavailable is returned when the device location cannot be determined.
	ErrLocationUnavailable = errors.New("location unavailable")

	// ErrProvider matches every *ProviderError.
	ErrProvider = errors.New("weather provider error")

	// ErrNetwork matches every *NetworkError.
	ErrNetwork = errors.New("network failure")
)

// ProviderError is a non-success HTTP status returned by the weather provider.
// Message is the provider's own message when it could be parsed, a generic
// description otherwise.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// NetworkError is a connection, timeout or malformed-response failure talking to a remote endpoint.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
