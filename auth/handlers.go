package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/campushub-go/apperror"
)

// Handlers wraps the auth Service with HTTP controllers.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary Register a new student account
// @Description Creates an account and returns a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 201 {object} auth.TokenResponse "Account created"
// @Failure 400 {object} apperror.ErrorResponse "Malformed or invalid fields"
// @Failure 409 {object} apperror.ErrorResponse "Student ID or phone already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// HandleLogin godoc
// @Summary Log in
// @Description Authenticates a student and returns a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.TokenResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Malformed request"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.StudentID == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("student ID and password are required", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleChangePassword godoc
// @Summary Change password
// @Description Changes the authenticated account's password.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changeBody body auth.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string "Password changed"
// @Failure 400 {object} apperror.ErrorResponse "Current password incorrect or new password invalid"
// @Failure 401 {object} apperror.ErrorResponse "Unauthenticated"
// @Router /auth/change-password [post]
func (h *Handlers) HandleChangePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError("no authentication context", nil))
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.service.ChangePassword(r.Context(), identity.AccountID, req); err != nil {
			WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "password changed successfully"})
	}
}

// HandleResetPassword godoc
// @Summary Reset a forgotten password
// @Description Resets the password for the account matching student ID and phone.
// @Tags Auth
// @Accept json
// @Produce json
// @Param resetBody body auth.ResetPasswordRequest true "Identifiers and new password"
// @Success 200 {object} map[string]string "Password reset"
// @Failure 404 {object} apperror.ErrorResponse "No matching account"
// @Router /auth/reset-password [post]
func (h *Handlers) HandleResetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.service.ResetPassword(r.Context(), req); err != nil {
			WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "password has been reset successfully"})
	}
}

// writeJSON serializes data to JSON with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into the standardized apperror response.
// Non-AppError values become a generic 500; server faults are logged with
// detail but reported to the caller with the user-facing message only.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("Error processing request %s %s: %v", r.Method, r.URL.Path, appErr)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
