package apierr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a route or resource does not exist.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "Not found")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "Invalid request")

	// ErrUnauthorized is returned when an admin request carries no valid key.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")

	// ErrInternalError is returned for every failure of the data pipeline.
	// Clients never see more than this message.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "Internal server error")
)

type Extras map[string]any

type APIError struct {
	StatusCode int    `example:"500"`
	ErrorCode  string `example:"INTERNAL_ERROR"`
	Message    string `example:"Internal server error"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e APIError) Msg(format string, parts ...any) *APIError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e APIError) WithExtras(extras Extras) *APIError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *APIError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

// Body is the JSON document sent to the client.
func (e *APIError) Body() fiber.Map {
	body := fiber.Map{
		"error": e.Message,
	}
	if e.Extras != nil {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}
	return body
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
