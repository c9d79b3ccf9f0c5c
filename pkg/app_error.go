package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// AppError is the error shape every HTTP handler reports.
//
// The JSON body is always {"ok": false, "error": Message, "code": Code} plus
// "field" for validation failures. Err is kept for server-side logging and is
// never serialized.
type AppError struct {
	Code       string
	Message    string
	Field      string
	HTTPStatus int
	Err        error
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewFieldError builds a validation error naming the offending request field.
func NewFieldError(code, field, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Field: field, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() gin.H {
	body := gin.H{
		"ok":    false,
		"error": e.Message,
		"code":  e.Code,
	}
	if e.Field != "" {
		body["field"] = e.Field
	}
	return body
}
