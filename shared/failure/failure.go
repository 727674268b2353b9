package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure independently of the HTTP code it maps to.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindAuthFailure
	KindForbidden
	KindNotFound
	KindConflict
	KindNoValidParameters
	KindDatabase
	KindInternal
	KindInitialization
	KindUnimplemented
)

var kindNames = map[Kind]string{
	KindUnknown:           "Unknown",
	KindBadRequest:        "BadRequest",
	KindAuthFailure:       "AuthFailure",
	KindForbidden:         "Forbidden",
	KindNotFound:          "NotFound",
	KindConflict:          "Conflict",
	KindNoValidParameters: "NoValidParameters",
	KindDatabase:          "DatabaseError",
	KindInternal:          "InternalError",
	KindInitialization:    "InitializationFailure",
	KindUnimplemented:     "Unimplemented",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindUnknown]
}

const (
	MessageDatabasePrefix    = "Database query failed: "
	MessageNoValidParameters = "No valid parameters provided for update"
	MessageInitialization    = "Fail"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
	err     error
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying driver error, if any.
func (e *Failure) Unwrap() error {
	return e.err
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindAuthFailure,
		Message: msg,
	}
}

// AuthFailure is returned when a credential token resolves to no credential.
func AuthFailure(msg string) error {
	return Unauthorized(msg)
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
			err:     err,
		}
	}

	return nil
}

// Database wraps a driver error. The message keeps the driver detail.
func Database(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindDatabase,
			Message: MessageDatabasePrefix + err.Error(),
			err:     err,
		}
	}

	return nil
}

// NoValidParameters is returned when an update has no column left to set.
func NoValidParameters() error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindNoValidParameters,
		Message: MessageNoValidParameters,
	}
}

// InitializationFailure carries no detail beyond the failed outcome.
func InitializationFailure() error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindInitialization,
		Message: MessageInitialization,
	}
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Kind:    KindUnimplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the Kind of an error interface, KindUnknown for foreign errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnknown
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}

// GetMessage returns the message of the innermost Failure in err's chain, or
// err.Error() when there is none.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}
