package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/user/campushub-go/apperror"
	"github.com/user/campushub-go/students"
)

// Middleware is the authentication gate. It extracts the bearer token,
// verifies it, resolves the bound account from the store, and attaches an
// Identity to the request context. Every failure mode short-circuits the
// request with 401 before any handler runs; the gate itself never mutates
// anything.
//
// A token that is structurally valid and unexpired can still reference an
// account deleted after issuance. That case is indistinguishable from an
// invalid token on purpose.
func Middleware(tokens *TokenService, store students.Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("authorization header is missing", nil))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, r, apperror.NewAuthError("authorization header format must be Bearer {token}", nil))
				return
			}

			accountID, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					WriteError(w, r, apperror.NewAuthError("token expired", err))
					return
				}
				WriteError(w, r, apperror.NewAuthError("invalid token", err))
				return
			}

			student, err := store.FindByID(r.Context(), accountID)
			if err != nil {
				if apperror.IsNotFound(err) {
					WriteError(w, r, apperror.NewAuthError("invalid token", nil))
					return
				}
				WriteError(w, r, apperror.NewInternalError("authentication failed", err))
				return
			}

			identity := Identity{
				AccountID:      student.ID,
				Role:           student.Role,
				ProfilePrivacy: student.ProfilePrivacy,
			}
			next.ServeHTTP(w, r.WithContext(NewContextWithIdentity(r.Context(), identity)))
		})
	}
}
