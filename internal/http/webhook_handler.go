package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
	"github.com/andrenobre07/zentorno-sub000/internal/service"
)

// SignatureHeader carries the gateway's HMAC over the raw request body.
const SignatureHeader = "Payment-Signature"

const maxWebhookBodySize = 1 << 20 // 1MB

type WebhookHandler struct {
	finalize *service.FinalizeService
	timeout  time.Duration
}

func NewWebhookHandler(finalize *service.FinalizeService, timeout time.Duration) *WebhookHandler {
	return &WebhookHandler{
		finalize: finalize,
		timeout:  timeout,
	}
}

// POST /api/v1/webhooks/payment
//
// The body is passed to the workflow as raw bytes: the signature covers the
// exact byte sequence, so nothing may parse or re-encode it first.
func (h *WebhookHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodySize))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "failed to read request body")
		return
	}

	status, err := h.finalize.HandleEvent(ctx, body, r.Header.Get(SignatureHeader))

	switch status {
	case domain.FinalizeStatusRejected:
		respondError(w, http.StatusBadRequest, "invalid_signature", err.Error())
	case domain.FinalizeStatusRecordFailed:
		// Non-2xx makes the gateway redeliver; the session_id unique index
		// keeps the retry from double-recording.
		respondError(w, http.StatusInternalServerError, "record_failed", err.Error())
	default:
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"received": true,
			"status":   status.String(),
		})
	}
}
