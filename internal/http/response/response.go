// Package response writes JSON bodies and the {"error":{code,message}}
// envelope shared by every endpoint.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Error codes.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// Fixed messages for the fallback responses.
const (
	MsgEndpointNotFound = "Endpoint not found"
	MsgInternal         = "Something went wrong"
)

// APIError is an error that maps to a status code and a public message.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

type envelope struct {
	Error *APIError `json:"error"`
}

func BadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: message}
}

func NotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func TooManyRequests(message string) *APIError {
	return &APIError{Status: http.StatusTooManyRequests, Code: CodeTooManyRequests, Message: message}
}

func Internal() *APIError {
	return &APIError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: MsgInternal}
}

// JSON takes a response status code and arbitrary data and writes a json
// response to the client.
func JSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

// Error writes err as an error envelope. An *APIError keeps its status and
// message; anything else is logged and answered with a generic 500.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		if log != nil {
			log.Error("request failed", zap.Error(err))
		}
		apiErr = Internal()
	}
	if werr := JSON(w, apiErr.Status, envelope{Error: apiErr}); werr != nil && log != nil {
		log.Warn("could not write error response", zap.Error(werr))
	}
}
