package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/andrenobre07/zentorno-sub000/internal/service"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
	session  *service.SessionService
	timeout  time.Duration
}

func NewCheckoutHandler(checkout *service.CheckoutService, session *service.SessionService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		session:  session,
		timeout:  timeout,
	}
}

// POST /api/v1/checkout
func (h *CheckoutHandler) InitiateCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	caller := identityFromContext(r.Context())
	if caller == nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user authentication")
		return
	}

	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	resp, err := h.checkout.InitiateCheckout(ctx, caller, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

// POST /api/v1/session
func (h *CheckoutHandler) HydrateSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	caller := identityFromContext(r.Context())
	if caller == nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user authentication")
		return
	}

	info, err := h.session.Hydrate(ctx, caller)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, info)
}
