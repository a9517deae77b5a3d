package failure

import (
	"errors"
)

// Code classifies a Failure so the console can decide how to report it.
type Code int

const (
	CodeBadRequest Code = iota + 1
	CodeUnauthorized
	CodeForbidden
	CodeNotFound
	CodeConflict
	CodeInternal
)

// Failure is a wrapper for error messages and codes shown to the console user.
type Failure struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

var NotManagerOfHotel = &Failure{Code: CodeForbidden, Message: "You are not a manager for that hotel!"}
var NotManagerOfAnyHotel = &Failure{Code: CodeForbidden, Message: "You are not a manager for any hotels!"}
var RoomUnavailable = &Failure{Code: CodeConflict, Message: "Sorry that room is currently unavailable for that booking date"}
var NotLoggedIn = &Failure{Code: CodeUnauthorized, Message: "You must log in first"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad input.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad input with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    CodeBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for rejected credentials.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    CodeUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    CodeNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    CodeConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    CodeForbidden,
		Message: msg,
	}
}

// GetCode returns the failure code of an error interface.
func GetCode(err error) Code {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeInternal
}
