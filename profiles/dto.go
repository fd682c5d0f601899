package profiles

import (
	"time"

	"github.com/user/campushub-go/students"
)

// ProfileResponse is the policy-filtered view of a student profile. Withheld
// fields carry omitempty and are left unset, so they are absent from the JSON
// rather than nulled or masked.
type ProfileResponse struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`

	Department string `json:"department"`
	Session    string `json:"session"`
	Semester   string `json:"semester"`
	Group      string `json:"group"`
	Shift      string `json:"shift"`
	Blood      string `json:"blood,omitempty"`

	Phone      *string            `json:"phone,omitempty"`
	ProfilePic string             `json:"profile_pic,omitempty"`
	Skills     []string           `json:"skills,omitempty"`
	Projects   []students.Project `json:"projects,omitempty"`

	PhonePrivacy   students.Privacy `json:"phone_privacy"`
	ProfilePrivacy students.Privacy `json:"profile_privacy"`

	IsOnline bool      `json:"is_online"`
	LastSeen time.Time `json:"last_seen"`
}

// UpdateProfileRequest carries the owner-editable scalar fields.
type UpdateProfileRequest struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Blood      string `json:"blood"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

// PrivacyRequest toggles one privacy flag.
type PrivacyRequest struct {
	Privacy students.Privacy `json:"privacy" example:"private"`
}

// AddSkillRequest adds one skill to the owner's profile.
type AddSkillRequest struct {
	Skill string `json:"skill" example:"Go"`
}

// AddProjectRequest adds one project entry.
type AddProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// SkillsResponse returns the current skill list after a mutation.
type SkillsResponse struct {
	Skills []string `json:"skills"`
}

// ProjectsResponse returns the current project list after a mutation.
type ProjectsResponse struct {
	ProjectID string             `json:"project_id,omitempty"`
	Projects  []students.Project `json:"projects"`
}

// ProfilePicResponse returns just the profile picture payload.
type ProfilePicResponse struct {
	ProfilePic string `json:"profile_pic"`
}

// PrivacyResponse confirms the new state of a privacy flag.
type PrivacyResponse struct {
	Privacy students.Privacy `json:"privacy"`
}
