package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	defaultErrorCode    = "unknown_error"
	defaultErrorMessage = "Box API error"
)

// Error is the normalized failure envelope for every remote operation. It carries the
// provider-extracted error code and message along with the HTTP status of the response.
// Callers never see raw HTTP responses.
type Error struct {
	Code    string
	Message string
	Status  int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("box: %s (status %d): %s", e.Code, e.Status, e.Message)
}

// IsNotFound reports whether the remote responded with a 404.
func (e *Error) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsNotFound reports whether err (or any error it wraps) is a Box API not-found error.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsNotFound()
}

// errorBody is the union of the error shapes Box returns: OAuth endpoints use
// error/error_description, the content API uses code/message.
type errorBody struct {
	ErrorCode        string `json:"error"`
	Code             string `json:"code"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

// parseError builds the failure envelope for a response with status >= 400. The error
// code is extracted from the body's "error" then "code" fields, the message from
// "error_description" then "message", with generic fallbacks when absent or the body
// is not JSON.
func parseError(status int, body []byte) *Error {
	apiErr := &Error{
		Code:    defaultErrorCode,
		Message: defaultErrorMessage,
		Status:  status,
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return apiErr
	}

	switch {
	case eb.ErrorCode != "":
		apiErr.Code = eb.ErrorCode
	case eb.Code != "":
		apiErr.Code = eb.Code
	}

	switch {
	case eb.ErrorDescription != "":
		apiErr.Message = eb.ErrorDescription
	case eb.Message != "":
		apiErr.Message = eb.Message
	}

	return apiErr
}
