package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
	"github.com/andrenobre07/zentorno-sub000/internal/identity"
	"github.com/andrenobre07/zentorno-sub000/internal/repository"
	"github.com/andrenobre07/zentorno-sub000/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}

// handleServiceError converts service and collaborator errors to HTTP status codes
func handleServiceError(w http.ResponseWriter, err error) {
	var httpStatus int
	var code string

	switch {
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, identity.ErrInvalidToken):
		httpStatus = http.StatusUnauthorized
		code = "unauthenticated"
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, domain.ErrUnknownOption),
		errors.Is(err, service.ErrAmountBelowMinimum):
		httpStatus = http.StatusBadRequest
		code = "invalid_request"
	case errors.Is(err, repository.ErrCarNotFound),
		errors.Is(err, repository.ErrPurchaseNotFound),
		errors.Is(err, repository.ErrProfileNotFound),
		errors.Is(err, identity.ErrAccountNotFound):
		httpStatus = http.StatusNotFound
		code = "not_found"
	default:
		httpStatus = http.StatusInternalServerError
		code = "internal_error"
	}

	respondError(w, httpStatus, code, err.Error())
}
