// internal/app/system/httperr/httperr.go
//
// Package httperr maps domain errors onto JSON error responses so every
// feature reports failures the same way:
//
//	422 invalid input      (field-level validation)
//	409 conflict           (already joined, trip full, duplicates)
//	404 not found
//	503 store unavailable  (mongo unreachable or timed out)
//	500 everything else    (logged, details withheld from the client)
package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pasaporteapp/pasaporte/internal/domain/roster"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// payload is the JSON error body. Field and Reason are only set for
// validation failures.
type payload struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Write classifies err and sends the matching status and JSON body.
// Unrecognized errors are logged and reported as a plain 500 so internal
// detail never leaks to the client.
func Write(w http.ResponseWriter, log *zap.Logger, err error) {
	var ve *roster.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, payload{
			Error:  ve.Error(),
			Field:  ve.Field,
			Reason: ve.Reason,
		})
	case errors.Is(err, roster.ErrAlreadyJoined), errors.Is(err, roster.ErrTripFull):
		writeJSON(w, http.StatusConflict, payload{Error: err.Error()})
	case IsUnavailable(err):
		if log != nil {
			log.Error("store unavailable", zap.Error(err))
		}
		writeJSON(w, http.StatusServiceUnavailable, payload{Error: "service temporarily unavailable"})
	default:
		if log != nil {
			log.Error("internal error", zap.Error(err))
		}
		writeJSON(w, http.StatusInternalServerError, payload{Error: "internal error"})
	}
}

// NotFound sends a 404 with the given message.
func NotFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, payload{Error: msg})
}

// Conflict sends a 409 with the given message.
func Conflict(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusConflict, payload{Error: msg})
}

// BadRequest sends a 400 with the given message. Used for malformed
// payloads and bad path parameters, as opposed to field validation.
func BadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, payload{Error: msg})
}

// Unauthorized sends a 401 with the given message.
func Unauthorized(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusUnauthorized, payload{Error: msg})
}

// TooManyRequests sends a 429 with the given message.
func TooManyRequests(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusTooManyRequests, payload{Error: msg})
}

// IsUnavailable reports whether err means the document store could not
// be reached in time, rather than a logical failure.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}

func writeJSON(w http.ResponseWriter, status int, p payload) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(p)
}
