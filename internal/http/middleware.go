package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/andrenobre07/zentorno-sub000/internal/identity"
	"github.com/andrenobre07/zentorno-sub000/internal/repository"
)

type contextKey string

const identityContextKey contextKey = "identity"

// AuthMiddleware verifies the bearer token against the identity provider and
// stores the verified identity in the request context.
func AuthMiddleware(verifier identity.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respondError(w, http.StatusUnauthorized, "unauthenticated", "missing bearer token")
				return
			}

			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				handleServiceError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates every administrative route on membership in the admins
// collection. It runs after AuthMiddleware and checks the store on each
// request; there is no cached role.
func RequireAdmin(profiles repository.ProfileRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := identityFromContext(r.Context())
			if caller == nil {
				respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user authentication")
				return
			}

			isAdmin, err := profiles.IsAdmin(r.Context(), caller.UserID)
			if err != nil {
				handleServiceError(w, err)
				return
			}
			if !isAdmin {
				respondError(w, http.StatusForbidden, "permission_denied", "administrator access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return token
}

func identityFromContext(ctx context.Context) *identity.Identity {
	if id, ok := ctx.Value(identityContextKey).(*identity.Identity); ok {
		return id
	}
	return nil
}
