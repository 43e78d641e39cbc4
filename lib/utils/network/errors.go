package network

import (
	"context"
	"errors"
	"net"
	"strings"
)

// NetworkError represents categorized network errors
type NetworkError struct {
	Type    NetworkErrorType
	Message string
	Err     error
}

type NetworkErrorType string

const (
	ErrorTypeTimeout    NetworkErrorType = "timeout"
	ErrorTypeConnection NetworkErrorType = "connection"
	ErrorTypeCanceled   NetworkErrorType = "canceled"
	ErrorTypeUnknown    NetworkErrorType = "unknown"
)

// CategorizeNetworkError analyzes an error and returns a NetworkError with appropriate category
func CategorizeNetworkError(err error) *NetworkError {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &NetworkError{Type: ErrorTypeCanceled, Message: "Request canceled", Err: err}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &NetworkError{Type: ErrorTypeTimeout, Message: "Request timed out", Err: err}
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return &NetworkError{Type: ErrorTypeTimeout, Message: "Request timed out", Err: err}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "connection closed") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "network is unreachable") {
		return &NetworkError{Type: ErrorTypeConnection, Message: "Connection error", Err: err}
	}

	return &NetworkError{Type: ErrorTypeUnknown, Message: "Network error", Err: err}
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	netErr := CategorizeNetworkError(err)
	return netErr != nil && netErr.Type == ErrorTypeTimeout
}

// IsConnectionError checks if an error is a connection error
func IsConnectionError(err error) bool {
	netErr := CategorizeNetworkError(err)
	return netErr != nil && netErr.Type == ErrorTypeConnection
}

// Unwrap implements the unwrap interface for error wrapping
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// ShouldLogAsError determines if an error should be logged as an ERROR level.
// Timeouts, connection failures and cancellations are environmental and
// logged as warnings; anything else (bad payloads, bad URLs) is an error.
func ShouldLogAsError(err error) bool {
	if err == nil {
		return false
	}
	return CategorizeNetworkError(err).Type == ErrorTypeUnknown
}
