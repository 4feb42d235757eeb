// Package errx provides typed application errors organized in per-domain
// registries. Each registered code carries an error type, an HTTP status and
// a default message, so transport layers can map failures without inspecting
// message strings.
package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for propagation policy decisions.
type Type string

const (
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeValidation     Type = "VALIDATION"
	TypeBusiness       Type = "BUSINESS"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeInternal       Type = "INTERNAL"
)

// Code identifies a registered error, qualified by its registry prefix
// (e.g. "JOB.NOT_FOUND").
type Code string

type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of one domain.
type Registry struct {
	prefix string
	codes  map[Code]definition
}

// NewRegistry creates an error registry for a domain prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]definition),
	}
}

// Register adds an error definition and returns its qualified code.
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	qualified := Code(r.prefix + "." + code)
	r.codes[qualified] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return qualified
}

// New creates an error for a previously registered code.
func (r *Registry) New(code Code) *Error {
	def, ok := r.codes[code]
	if !ok {
		return &Error{
			Type:       TypeInternal,
			Code:       code,
			Message:    "unregistered error code",
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	return &Error{
		Type:       def.errType,
		Code:       code,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// Error is a typed application error.
type Error struct {
	Type       Type           `json:"type"`
	Code       Code           `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches contextual data and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse shapes the error for an outward JSON body.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"success": false,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an *Error of the given type. Used at
// boundaries where infrastructure failures are surfaced as-is, without
// translating them into a domain outcome.
func Wrap(err error, message string, errType Type) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	status := http.StatusInternalServerError
	switch errType {
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	case TypeValidation, TypeBusiness:
		status = http.StatusBadRequest
	case TypeAuthorization:
		status = http.StatusForbidden
	case TypeAuthentication:
		status = http.StatusUnauthorized
	}
	return &Error{
		Type:       errType,
		Code:       Code(string(errType)),
		Message:    message,
		HTTPStatus: status,
		cause:      err,
	}
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, errType Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == errType
}
