package profiles

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/campushub-go/apperror"
	"github.com/user/campushub-go/auth"
)

// Handlers wraps the profile Service with HTTP controllers. All routes sit
// behind the authentication gate, so the identity is always present; a
// missing identity means a wiring bug, reported as 401.
type Handlers struct {
	service *Service
}

// NewHandlers creates new profile Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

func viewerFrom(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("no authentication context", nil))
	}
	return identity, ok
}

// HandleGetProfile godoc
// @Summary Get a student profile
// @Description Returns the target profile filtered by the privacy policy; withheld fields are absent.
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} profiles.ProfileResponse
// @Failure 401 {object} apperror.ErrorResponse "Unauthenticated"
// @Failure 404 {object} apperror.ErrorResponse "Student not found"
// @Router /users/profile/{id} [get]
func (h *Handlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFrom(w, r)
		if !ok {
			return
		}

		profile, err := h.service.GetProfile(r.Context(), viewer, chi.URLParam(r, "id"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// HandleGetProfilePic godoc
// @Summary Get a profile picture
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} profiles.ProfilePicResponse
// @Failure 403 {object} apperror.ErrorResponse "Profile is private"
// @Router /users/profile-pic/{id} [get]
func (h *Handlers) HandleGetProfilePic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFrom(w, r)
		if !ok {
			return
		}

		pic, err := h.service.GetProfilePic(r.Context(), viewer, chi.URLParam(r, "id"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, pic)
	}
}

// HandleUpdateProfile godoc
// @Summary Update own profile
// @Description Owner-only update of full name, phone, blood group and profile picture.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param profileBody body profiles.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} profiles.ProfileResponse
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Failure 409 {object} apperror.ErrorResponse "Phone already registered"
// @Router /users/profile/{id} [put]
func (h *Handlers) HandleUpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFrom(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		profile, err := h.service.UpdateProfile(r.Context(), viewer, chi.URLParam(r, "id"), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

func (h *Handlers) handleSetPrivacy(set func(r *http.Request, viewer auth.Identity, privacy PrivacyRequest) (*PrivacyResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFrom(w, r)
		if !ok {
			return
		}

		var req PrivacyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := set(r, viewer, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleSetPhonePrivacy godoc
// @Summary Toggle phone visibility
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param privacyBody body profiles.PrivacyRequest true "public or private"
// @Success 200 {object} profiles.PrivacyResponse
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Router /users/phone-privacy/{id} [patch]
func (h *Handlers) HandleSetPhonePrivacy() http.HandlerFunc {
	return h.handleSetPrivacy(func(r *http.Request, viewer auth.Identity, req PrivacyRequest) (*PrivacyResponse, error) {
		return h.service.SetPhonePrivacy(r.Context(), viewer, chi.URLParam(r, "id"), req.Privacy)
	})
}

// HandleSetProfilePrivacy godoc
// @Summary Toggle profile sections visibility
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param privacyBody body profiles.PrivacyRequest true "public or private"
// @Success 200 {object} profiles.PrivacyResponse
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Router /users/profile-privacy/{id} [patch]
func (h *Handlers) HandleSetProfilePrivacy() http.HandlerFunc {
	return h.handleSetPrivacy(func(r *http.Request, viewer auth.Identity, req PrivacyRequest) (*PrivacyResponse, error) {
		return h.service.SetProfilePrivacy(r.Context(), viewer, chi.URLParam(r, "id"), req.Privacy)
	})
}

// HandleAddSkill godoc
// @Summary Add a skill
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param skillBody body profiles.AddSkillRequest true "Skill to add"
// @Success 200 {object} profiles.SkillsResponse
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Router /users/skills/{id} [post]
func (h *Handlers) HandleAddSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFrom(w, r)
		if !ok {
			return
		}

		var req AddSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.AddSkill(r.Context(), viewer, chi.URLParam(r, "id"), req.Skill)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleRemoveSkill godoc
// @Summary Remove a skill
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param skill path string true "Skill to remove"
// @Success 200 {object} profiles.SkillsResponse
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Router /users/skills/{id}/{skill} [delete]
func (h *Handlers) HandleRemoveSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFrom(w, r)
		if !ok {
			return
		}

		resp, err := h.service.RemoveSkill(r.Context(), viewer, chi.URLParam(r, "id"), chi.URLParam(r, "skill"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleAddProject godoc
// @Summary Add a project
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param projectBody body profiles.AddProjectRequest true "Project to add"
// @Success 200 {object} profiles.ProjectsResponse
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Router /users/projects/{id} [post]
func (h *Handlers) HandleAddProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFrom(w, r)
		if !ok {
			return
		}

		var req AddProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.AddProject(r.Context(), viewer, chi.URLParam(r, "id"), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleRemoveProject godoc
// @Summary Remove a project
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param projectID path string true "Project ID to remove"
// @Success 200 {object} profiles.ProjectsResponse
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Router /users/projects/{id}/{projectID} [delete]
func (h *Handlers) HandleRemoveProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFrom(w, r)
		if !ok {
			return
		}

		resp, err := h.service.RemoveProject(r.Context(), viewer, chi.URLParam(r, "id"), chi.URLParam(r, "projectID"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterRoutes mounts the profile routes on a router that already carries
// the authentication gate.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/profile/{id}", h.HandleGetProfile())
	r.Put("/profile/{id}", h.HandleUpdateProfile())
	r.Get("/profile-pic/{id}", h.HandleGetProfilePic())
	r.Patch("/phone-privacy/{id}", h.HandleSetPhonePrivacy())
	r.Patch("/profile-privacy/{id}", h.HandleSetProfilePrivacy())
	r.Post("/skills/{id}", h.HandleAddSkill())
	r.Delete("/skills/{id}/{skill}", h.HandleRemoveSkill())
	r.Post("/projects/{id}", h.HandleAddProject())
	r.Delete("/projects/{id}/{projectID}", h.HandleRemoveProject())
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
