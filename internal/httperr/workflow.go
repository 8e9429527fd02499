package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidArgument Kind = "invalid_argument"
	KindInvalidState    Kind = "invalid_state"
	KindConflict        Kind = "conflict"
	KindInternal        Kind = "internal"
)

// WorkflowError is a typed failure produced by the use case layer.
// Code is a stable machine-readable tag, Message the user-facing reason.
type WorkflowError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e WorkflowError) Error() string {
	return e.Code
}

func ErrNotFound(code, message string) error {
	return WorkflowError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrInvalidArgument(code, message string) error {
	return WorkflowError{Kind: KindInvalidArgument, Code: code, Message: message}
}

func ErrInvalidState(code, message string) error {
	return WorkflowError{Kind: KindInvalidState, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return WorkflowError{Kind: KindConflict, Code: code, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var we WorkflowError
	if errors.As(err, &we) {
		return we.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var we WorkflowError
	if errors.As(err, &we) {
		return we.Code == code
	}
	return false
}

// WriteError maps a use case error onto the HTTP response. Unexpected
// errors surface as a generic 500; the detail stays with the caller's log.
func WriteError(c *gin.Context, err error) {
	var we WorkflowError
	if !errors.As(err, &we) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch we.Kind {
	case KindNotFound:
		Write(c, http.StatusNotFound, we.Code, we.Message)
	case KindInvalidArgument, KindInvalidState:
		Write(c, http.StatusBadRequest, we.Code, we.Message)
	case KindConflict:
		Write(c, http.StatusConflict, we.Code, we.Message)
	default:
		Internal(c, "internal_error", "Something went wrong.")
	}
}
