package api

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// ErrorCode identifies why a request could not be served.
type ErrorCode string

const (
	// ErrCodeNotFound is returned for a blocklist the output format does not produce.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeNotReady is returned until the first run has finished.
	ErrCodeNotReady ErrorCode = "not_ready"

	ErrCodeInternalError ErrorCode = "internal_error"
)

// notReadyRetrySeconds is the Retry-After hint sent before the first run has finished.
const notReadyRetrySeconds = 30

// APIError is the body of every failed request.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

// WriteError writes a JSON error envelope with the given status.
func WriteError(w http.ResponseWriter, statusCode int, code ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: APIError{Code: code, Message: message}})
}

// WriteNotFound reports a blocklist that is not part of the configured output format.
func WriteNotFound(w http.ResponseWriter, blocklist string) {
	WriteError(w, http.StatusNotFound, ErrCodeNotFound, blocklist+" is not generated with the current output format")
}

// WriteNotReady reports that no blocklist has been published yet.
func WriteNotReady(w http.ResponseWriter) {
	w.Header().Set("Retry-After", strconv.Itoa(notReadyRetrySeconds))
	WriteError(w, http.StatusServiceUnavailable, ErrCodeNotReady, "blocklist has not been generated yet")
}

func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
}
