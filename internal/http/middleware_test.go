package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrenobre07/zentorno-sub000/internal/identity"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := identityFromContext(r.Context())
		if caller == nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	verifier := VerifierMock{Identity: &identity.Identity{UserID: "user123"}}
	handler := AuthMiddleware(verifier)(okHandler())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/", nil)
	request.Header.Set("Authorization", "Bearer token123")

	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	verifier := VerifierMock{Identity: &identity.Identity{UserID: "user123"}}
	handler := AuthMiddleware(verifier)(okHandler())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/", nil)

	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := VerifierMock{Err: identity.ErrInvalidToken}
	handler := AuthMiddleware(verifier)(okHandler())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/", nil)
	request.Header.Set("Authorization", "Bearer expired")

	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "unauthenticated" {
		t.Errorf("Expected code unauthenticated, got %s", response.Code)
	}
}

func TestRequireAdmin_Allows(t *testing.T) {
	verifier := VerifierMock{Identity: &identity.Identity{UserID: "admin1"}}
	profiles := ProfileRepoMock{Admins: map[string]bool{"admin1": true}}

	handler := AuthMiddleware(verifier)(RequireAdmin(profiles)(okHandler()))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("DELETE", "/", nil)
	request.Header.Set("Authorization", "Bearer token123")

	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	// A valid credential without membership must be forbidden, not unauthorized.
	verifier := VerifierMock{Identity: &identity.Identity{UserID: "user123"}}
	profiles := ProfileRepoMock{Admins: map[string]bool{}}

	handler := AuthMiddleware(verifier)(RequireAdmin(profiles)(okHandler()))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("DELETE", "/", nil)
	request.Header.Set("Authorization", "Bearer token123")

	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("Expected status code %d, got %d", http.StatusForbidden, recorder.Code)
	}
}

func TestRequireAdmin_NoIdentityInContext(t *testing.T) {
	profiles := ProfileRepoMock{Admins: map[string]bool{}}
	handler := RequireAdmin(profiles)(okHandler())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("DELETE", "/", nil)

	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}
