package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Kind classifies a Canvas API failure.
type Kind int

const (
	// KindGeneric covers failure statuses with no specific mapping.
	KindGeneric Kind = iota
	// KindAuth is authentication failure (401).
	KindAuth
	// KindNotFound is a missing resource (404).
	KindNotFound
	// KindValidation is a rejected request (400, 422).
	KindValidation
	// KindRateLimited is a throttled request (429).
	KindRateLimited
	// KindServer is an upstream server fault (5xx).
	KindServer
	// KindTransport is a network or timeout failure before any response.
	KindTransport
)

// String returns the kind name used in error output and logs.
func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimited:
		return "rate_limited"
	case KindServer:
		return "server"
	case KindTransport:
		return "transport"
	default:
		return "generic"
	}
}

// Error is a classified Canvas API failure. Every failed request resolves to
// exactly one Error; callers inspect Kind rather than matching on status codes.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int            // 0 for transport failures
	Endpoint   string         // originating endpoint, when known
	Errors     map[string]any // structured validation payload, when the body was an object
	RetryAfter int            // seconds from Retry-After; 0 when the header was absent
}

// Error formats the fault the same way regardless of kind:
// "[status] Canvas API error: message (endpoint: /courses)".
func (e *Error) Error() string {
	msg := fmt.Sprintf("Canvas API error: %s", e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("[%d] %s", e.StatusCode, msg)
	}
	if e.Endpoint != "" {
		msg = fmt.Sprintf("%s (endpoint: %s)", msg, e.Endpoint)
	}
	return msg
}

// AsError unwraps err into an *Error if it is (or wraps) one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

const fallbackMessage = "Unknown error"

// classifyResponse maps a failed HTTP response onto exactly one *Error.
// It never fails on malformed input: an unparseable body falls back to the
// raw text, and an empty body to a fixed message.
func classifyResponse(resp *http.Response, body []byte, endpoint string) *Error {
	status := resp.StatusCode

	message := fallbackMessage
	var errorData map[string]any
	if json.Unmarshal(body, &errorData) == nil {
		if m, ok := errorData["message"].(string); ok && m != "" {
			message = m
		} else if m, ok := errorData["error"].(string); ok && m != "" {
			message = m
		}
	} else if text := strings.TrimSpace(string(body)); text != "" {
		message = text
	}

	switch {
	case status == http.StatusUnauthorized:
		return &Error{
			Kind:       KindAuth,
			Message:    "Authentication failed. Invalid or expired Canvas API token.",
			StatusCode: status,
			Endpoint:   endpoint,
		}
	case status == http.StatusNotFound:
		return &Error{
			Kind:       KindNotFound,
			Message:    fmt.Sprintf("Resource not found: %s", endpoint),
			StatusCode: status,
			Endpoint:   endpoint,
		}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &Error{
			Kind:       KindValidation,
			Message:    fmt.Sprintf("Validation error: %s", message),
			StatusCode: status,
			Endpoint:   endpoint,
			Errors:     errorData,
		}
	case status == http.StatusTooManyRequests:
		retryAfter := 0
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if n, err := strconv.Atoi(ra); err == nil {
				retryAfter = n
			}
		}
		msg := "Rate limit exceeded."
		if retryAfter > 0 {
			msg += fmt.Sprintf(" Retry after %d seconds.", retryAfter)
		}
		return &Error{
			Kind:       KindRateLimited,
			Message:    msg,
			StatusCode: status,
			Endpoint:   endpoint,
			RetryAfter: retryAfter,
		}
	case status >= 500:
		return &Error{
			Kind:       KindServer,
			Message:    "Canvas server error. Please try again later.",
			StatusCode: status,
			Endpoint:   endpoint,
		}
	default:
		return &Error{
			Kind:       KindGeneric,
			Message:    message,
			StatusCode: status,
			Endpoint:   endpoint,
		}
	}
}

// transportError wraps a pre-response failure (connect, timeout, canceled).
func transportError(err error, endpoint string) *Error {
	return &Error{
		Kind:     KindTransport,
		Message:  fmt.Sprintf("request failed: %v", err),
		Endpoint: endpoint,
	}
}
