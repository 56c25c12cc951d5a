package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is an error with an HTTP status and a stable machine-readable code.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal cause attached.
func (e *Error) WithInternal(err error) *Error {
	return &Error{HTTPStatus: e.HTTPStatus, Code: e.Code, Message: e.Message, Internal: err}
}

// WithMessage returns a copy of the error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	return &Error{HTTPStatus: e.HTTPStatus, Code: e.Code, Message: message, Internal: e.Internal}
}

// New creates an application error.
func New(status int, code, message string) *Error {
	return &Error{HTTPStatus: status, Code: code, Message: message}
}

var (
	ErrBadRequest       = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrNotFound         = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrMethodNotAllowed = New(http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	ErrUnknownMessage   = New(http.StatusBadRequest, "unknown_message", "Unknown message type")
	ErrUnknownItem      = New(http.StatusNotFound, "unknown_item", "Unknown item")
	ErrInternal         = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// Body is the JSON shape of an error response.
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// From resolves any error to an application error. Unknown errors become
// ErrInternal with the original attached as the cause.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.WithInternal(err)
}

// ToBody returns the status and response body for err. Internal causes are
// never included in the body.
func ToBody(err error) (int, Body) {
	appErr := From(err)
	return appErr.HTTPStatus, Body{Code: appErr.Code, Message: appErr.Message}
}

// WriteJSON writes err as {"error": {...}} with its HTTP status.
func WriteJSON(w http.ResponseWriter, err error) {
	status, body := ToBody(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]Body{"error": body})
}

// NewBadRequest creates a bad request error with a custom message.
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewUnknownItem reports an id the page does not render.
func NewUnknownItem(kind, id string) *Error {
	return ErrUnknownItem.WithMessage(fmt.Sprintf("%s '%s' not found", kind, id))
}
