package api

import "fmt"

// TransportErrorKind categorizes upstream search/detail failures. Quota
// and denial must stay distinguishable for callers: remediation differs.
type TransportErrorKind string

const (
	TransportQuotaExceeded  TransportErrorKind = "quota_exceeded"
	TransportInvalidRequest TransportErrorKind = "invalid_request"
	TransportDenied         TransportErrorKind = "denied"
	TransportUnavailable    TransportErrorKind = "unavailable"
)

// TransportError is returned for any non-recoverable upstream failure.
type TransportError struct {
	Kind    TransportErrorKind
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error (%s): %s", e.Kind, e.Message)
}

// KindFromHTTPStatus maps an HTTP status code to a transport error kind.
func KindFromHTTPStatus(code int) TransportErrorKind {
	switch {
	case code == 429:
		return TransportQuotaExceeded
	case code == 401 || code == 403:
		return TransportDenied
	case code >= 400 && code < 500:
		return TransportInvalidRequest
	default:
		return TransportUnavailable
	}
}

// KindFromStatus maps the places API status string carried inside a 200
// response body to a transport error kind.
func KindFromStatus(status string) (TransportErrorKind, bool) {
	switch status {
	case "OVER_QUERY_LIMIT":
		return TransportQuotaExceeded, true
	case "INVALID_REQUEST":
		return TransportInvalidRequest, true
	case "REQUEST_DENIED":
		return TransportDenied, true
	case "UNKNOWN_ERROR":
		return TransportUnavailable, true
	}
	return "", false
}
