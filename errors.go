package hetznerdns

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors matched with errors.Is. The first group mirrors the HTTP
// status codes the API answers with; the second covers failures before or
// after the HTTP exchange itself.
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrNotAcceptable    = errors.New("not acceptable")
	ErrConflict         = errors.New("conflict")
	ErrUnprocessable    = errors.New("unprocessable entity")
	ErrUnexpectedStatus = errors.New("unexpected status")

	ErrTransport    = errors.New("transport failure")
	ErrDeserialize  = errors.New("response decode failed")
	ErrMissingField = errors.New("expected field missing")
)

// APIError is the error value returned by every failing Client operation.
// StatusCode is zero when no HTTP response was received. Unwrap yields the
// matching sentinel (and, for transport and decode failures, the cause), so
// callers branch with errors.Is instead of matching message strings.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func sentinelForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusNotAcceptable:
		return ErrNotAcceptable
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	default:
		return ErrUnexpectedStatus
	}
}

// wireError is the server's error envelope. Details is decoded loosely; the
// only key the API is known to send is "taken" on 409/422 validation
// failures.
type wireError struct {
	Error struct {
		Message string                     `json:"message"`
		Code    int                        `json:"code"`
		Details map[string]json.RawMessage `json:"details"`
	} `json:"error"`
}

func statusError(op string, status int, body []byte) *APIError {
	var message, taken string

	var wire wireError
	if err := json.Unmarshal(body, &wire); err == nil {
		message = wire.Error.Message
		if raw, ok := wire.Error.Details["taken"]; ok {
			if err := json.Unmarshal(raw, &taken); err != nil {
				taken = string(raw)
			}
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(status)
	}

	if taken != "" && (status == http.StatusConflict || status == http.StatusUnprocessableEntity) {
		message = fmt.Sprintf("%s: taken: %s", message, taken)
	}

	return &APIError{Op: op, StatusCode: status, Message: message, Err: sentinelForStatus(status)}
}

func transportError(op string, cause error) *APIError {
	return &APIError{Op: op, Message: cause.Error(), Err: errors.Join(ErrTransport, cause)}
}

func deserializeError(op string, cause error) *APIError {
	return &APIError{Op: op, Message: cause.Error(), Err: errors.Join(ErrDeserialize, cause)}
}

func missingFieldError(op, field string) *APIError {
	return &APIError{Op: op, Message: fmt.Sprintf("response has no %q field", field), Err: ErrMissingField}
}
