package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrBaseURLRequired is returned by [New] when the base URL is empty.
var ErrBaseURLRequired = errors.New("base URL must be set")

// ErrCrossOriginLink is returned by [FetchAll] when a page links to another
// scheme or host than the client's base URL.
var ErrCrossOriginLink = errors.New("page link leaves the base URL's origin")

var errNilClient = errors.New("api client is nil")

// errorReasonFields are the JSON fields checked, in order, for a readable
// error reason in a failed response body.
var errorReasonFields = []string{"error", "errorSummary"}

// TransportError reports a request that never produced an HTTP response:
// connection, DNS or TLS failures and context cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Canceled reports whether the request was abandoned because its context was
// canceled or its deadline passed.
func (e *TransportError) Canceled() bool {
	return errors.Is(e.Err, context.Canceled) || errors.Is(e.Err, context.DeadlineExceeded)
}

// DNS reports whether the host name could not be resolved.
func (e *TransportError) DNS() bool {
	var dnsErr *net.DNSError
	return errors.As(e.Err, &dnsErr)
}

// HTTPStatusError reports a response with a non-2xx status code.
type HTTPStatusError struct {
	Method     string
	URL        string
	StatusCode int
	// Body is the raw response body, kept for diagnostics.
	Body []byte
	// Reason is the error message extracted from Body.
	Reason string
}

func newHTTPStatusError(method, url string, statusCode int, body []byte) *HTTPStatusError {
	return &HTTPStatusError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
		Reason:     errorReason(body),
	}
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, e.Reason)
}

// DecodeError reports a response body that does not match the expected type.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a request that could not be built. It is always
// returned before anything is sent.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode request: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is an [HTTPStatusError] with the given status.
func IsStatus(err error, statusCode int) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == statusCode
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsAuth reports whether err is a 401 or 403 response.
func IsAuth(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

func errorReason(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "(empty error body)"
	}

	if gjson.Valid(trimmed) {
		for _, field := range errorReasonFields {
			if r := gjson.Get(trimmed, field); r.Type == gjson.String && r.Str != "" {
				return r.Str
			}
		}
	}

	return trimmed
}
