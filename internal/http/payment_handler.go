package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/school-dashboard/internal/domain"
)

type paymentStore interface {
	Payments() []domain.Payment
	UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus)
}

type PaymentHandler struct {
	store     paymentStore
	responder responder
	logger    *slog.Logger
}

func NewPaymentHandler(store paymentStore, logger *slog.Logger) *PaymentHandler {
	base := defaultLogger(logger)
	return &PaymentHandler{store: store, responder: newResponder(base), logger: base}
}

func (h *PaymentHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "PaymentHandler", operation, attrs...)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	payments := h.store.Payments()
	h.log(r.Context(), "List").With("result_count", len(payments)).InfoContext(r.Context(), "payments listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listPaymentsResponse{Payments: payments})
}

// UpdateStatus transitions a payment to the requested status. Any
// transition between the known statuses is allowed.
func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	paymentID, ok := PaymentIDFromContext(r.Context())
	if !ok || strings.TrimSpace(paymentID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidPaymentID)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "UpdateStatus", "payment_id", paymentID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode status request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	switch req.Status {
	case domain.PaymentPending, domain.PaymentConfirmed, domain.PaymentOverdue:
	default:
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidStatus)
		return
	}

	h.store.UpdatePaymentStatus(r.Context(), paymentID, req.Status)
	h.log(r.Context(), "UpdateStatus").With("payment_id", paymentID, "status", req.Status).InfoContext(r.Context(), "payment status updated")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type updateStatusRequest struct {
	Status domain.PaymentStatus `json:"status"`
}

type listPaymentsResponse struct {
	Payments []domain.Payment `json:"payments"`
}
