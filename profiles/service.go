package profiles

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/user/campushub-go/apperror"
	"github.com/user/campushub-go/auth"
	"github.com/user/campushub-go/students"
)

const notAuthorized = "not authorized to update this profile"

// Service applies the authorization policy to every profile read and write.
// Handlers never touch the store or the record directly; whatever the policy
// withholds or forbids is propagated verbatim.
type Service struct {
	store students.Store
}

// NewService creates a profiles Service.
func NewService(store students.Store) *Service {
	return &Service{store: store}
}

// GetProfile returns the policy-filtered view of the target profile.
func (s *Service) GetProfile(ctx context.Context, viewer auth.Identity, targetID string) (*ProfileResponse, error) {
	target, err := s.store.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	access := DecideAccess(viewer, target)

	resp := &ProfileResponse{
		ID:             target.ID,
		StudentID:      target.StudentID,
		FullName:       target.FullName,
		Department:     target.Department,
		Session:        target.Session,
		Semester:       target.Semester,
		Group:          target.Group,
		Shift:          target.Shift,
		Blood:          target.Blood,
		PhonePrivacy:   target.PhonePrivacy,
		ProfilePrivacy: target.ProfilePrivacy,
		IsOnline:       target.IsOnline,
		LastSeen:       target.LastSeen,
	}

	if access.ViewSections {
		resp.Skills = target.Skills
		resp.Projects = target.Projects
		resp.ProfilePic = target.ProfilePic
	}
	if access.ViewPhone {
		phone := target.Phone
		resp.Phone = &phone
	}

	return resp, nil
}

// GetProfilePic returns the profile picture when the sections of the target
// profile are visible to the viewer.
func (s *Service) GetProfilePic(ctx context.Context, viewer auth.Identity, targetID string) (*ProfilePicResponse, error) {
	target, err := s.store.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !DecideAccess(viewer, target).ViewSections {
		return nil, apperror.NewUnauthorizedError("not authorized to view this profile picture", nil)
	}
	return &ProfilePicResponse{ProfilePic: target.ProfilePic}, nil
}

// requireOwner loads the target and checks the mutation grant. Every write
// path starts here; nothing is changed when the policy denies.
func (s *Service) requireOwner(ctx context.Context, viewer auth.Identity, targetID string) (*students.Student, error) {
	target, err := s.store.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !DecideAccess(viewer, target).Mutate {
		return nil, apperror.NewUnauthorizedError(notAuthorized, nil)
	}
	return target, nil
}

// UpdateProfile updates the owner-editable scalar fields. A phone change is
// re-validated against the format rule and re-checked for uniqueness.
func (s *Service) UpdateProfile(ctx context.Context, viewer auth.Identity, targetID string, req UpdateProfileRequest) (*ProfileResponse, error) {
	target, err := s.requireOwner(ctx, viewer, targetID)
	if err != nil {
		return nil, err
	}

	if req.FullName == "" || req.Phone == "" || req.Blood == "" {
		return nil, apperror.NewValidationError("full name, phone and blood group are required", nil)
	}
	if !students.ValidPhone(req.Phone) {
		return nil, apperror.NewValidationError("invalid phone number format", nil)
	}
	if !students.ValidBlood(req.Blood) {
		return nil, apperror.NewValidationError("invalid blood group", nil)
	}

	if req.Phone != target.Phone {
		_, err := s.store.FindByPhone(ctx, req.Phone)
		if err == nil {
			return nil, apperror.NewConflictError("phone number already registered", nil)
		}
		if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	target.FullName = req.FullName
	target.Phone = req.Phone
	target.Blood = req.Blood
	if req.ProfilePic != "" {
		target.ProfilePic = req.ProfilePic
	}

	if err := s.store.Save(ctx, target); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, viewer, targetID)
}

// SetPhonePrivacy toggles the phone visibility flag. The change is effective
// for every subsequent read; no decision is cached.
func (s *Service) SetPhonePrivacy(ctx context.Context, viewer auth.Identity, targetID string, privacy students.Privacy) (*PrivacyResponse, error) {
	if !privacy.Valid() {
		return nil, apperror.NewValidationError("invalid privacy option", nil)
	}
	target, err := s.requireOwner(ctx, viewer, targetID)
	if err != nil {
		return nil, err
	}
	target.PhonePrivacy = privacy
	if err := s.store.Save(ctx, target); err != nil {
		return nil, err
	}
	return &PrivacyResponse{Privacy: target.PhonePrivacy}, nil
}

// SetProfilePrivacy toggles the profile sections visibility flag.
func (s *Service) SetProfilePrivacy(ctx context.Context, viewer auth.Identity, targetID string, privacy students.Privacy) (*PrivacyResponse, error) {
	if !privacy.Valid() {
		return nil, apperror.NewValidationError("invalid privacy option", nil)
	}
	target, err := s.requireOwner(ctx, viewer, targetID)
	if err != nil {
		return nil, err
	}
	target.ProfilePrivacy = privacy
	if err := s.store.Save(ctx, target); err != nil {
		return nil, err
	}
	return &PrivacyResponse{Privacy: target.ProfilePrivacy}, nil
}

// AddSkill appends a skill to the owner's profile. The list stays a set:
// adding an existing skill is a no-op, order is preserved for display.
func (s *Service) AddSkill(ctx context.Context, viewer auth.Identity, targetID, skill string) (*SkillsResponse, error) {
	if skill == "" {
		return nil, apperror.NewValidationError("skill is required", nil)
	}
	target, err := s.requireOwner(ctx, viewer, targetID)
	if err != nil {
		return nil, err
	}

	if !target.HasSkill(skill) {
		target.Skills = append(target.Skills, skill)
		if err := s.store.Save(ctx, target); err != nil {
			return nil, err
		}
	}
	return &SkillsResponse{Skills: target.Skills}, nil
}

// RemoveSkill removes a skill from the owner's profile.
func (s *Service) RemoveSkill(ctx context.Context, viewer auth.Identity, targetID, skill string) (*SkillsResponse, error) {
	target, err := s.requireOwner(ctx, viewer, targetID)
	if err != nil {
		return nil, err
	}

	kept := target.Skills[:0]
	for _, existing := range target.Skills {
		if existing != skill {
			kept = append(kept, existing)
		}
	}
	target.Skills = kept

	if err := s.store.Save(ctx, target); err != nil {
		return nil, err
	}
	return &SkillsResponse{Skills: target.Skills}, nil
}

// AddProject appends a whole project entry with a generated identifier.
func (s *Service) AddProject(ctx context.Context, viewer auth.Identity, targetID string, req AddProjectRequest) (*ProjectsResponse, error) {
	if req.Title == "" || req.Description == "" {
		return nil, apperror.NewValidationError("title and description are required", nil)
	}
	target, err := s.requireOwner(ctx, viewer, targetID)
	if err != nil {
		return nil, err
	}

	project := students.Project{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		Link:         req.Link,
		Technologies: req.Technologies,
		CreatedAt:    time.Now(),
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	target.Projects = append(target.Projects, project)

	if err := s.store.Save(ctx, target); err != nil {
		return nil, err
	}
	return &ProjectsResponse{ProjectID: project.ID, Projects: target.Projects}, nil
}

// RemoveProject removes a whole project entry by its identifier.
func (s *Service) RemoveProject(ctx context.Context, viewer auth.Identity, targetID, projectID string) (*ProjectsResponse, error) {
	target, err := s.requireOwner(ctx, viewer, targetID)
	if err != nil {
		return nil, err
	}

	kept := target.Projects[:0]
	for _, p := range target.Projects {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	target.Projects = kept

	if err := s.store.Save(ctx, target); err != nil {
		return nil, err
	}
	return &ProjectsResponse{Projects: target.Projects}, nil
}
