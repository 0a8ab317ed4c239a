package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

var (
	errBadRequestBody   = errors.New("The request body is invalid.")
	errInvalidTeacherID = errors.New("The teacher ID is invalid.")
	errInvalidGroupID   = errors.New("The group ID is invalid.")
	errInvalidStudentID = errors.New("The student ID is invalid.")
	errInvalidRoomID    = errors.New("The classroom ID is invalid.")
	errInvalidBookingID = errors.New("The booking ID is invalid.")
	errInvalidPaymentID = errors.New("The payment ID is invalid.")
	errInvalidStatus    = errors.New("The payment status is invalid.")
	errInvalidDateRange = errors.New("The date range is invalid.")
	errNotFound         = errors.New("The requested resource was not found.")
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := statusMessage(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}

	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "The request is invalid."
	case http.StatusNotFound:
		return "The requested resource was not found."
	default:
		return "An internal server error occurred."
	}
}

type errorResponse struct {
	Message string `json:"message"`
}
