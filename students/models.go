// Package students defines the canonical account record for a registered
// student and the store that persists it. The record is the single source of
// truth consumed by the authentication gate and the profile authorization
// policy: identity fields, the salted password digest, and the two privacy
// flags all live here.
package students

import "time"

// Privacy is a two-state visibility toggle for a scope of the profile.
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

// Valid reports whether p is one of the two allowed privacy states.
func (p Privacy) Valid() bool {
	return p == PrivacyPublic || p == PrivacyPrivate
}

// Role distinguishes ordinary students from read-only admins. There is no
// self-promotion path: the role is never owner-mutable.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Project is one portfolio entry on a student's profile. Entries are added
// and removed whole; there is no partial edit.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Link         string    `json:"link,omitempty"`
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"created_at"`
}

// Student represents a registered student's durable identity and profile
// record.
type Student struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`

	// Academic fields. These are always-public display data.
	Department string `json:"department"`
	Session    string `json:"session"`
	Semester   string `json:"semester"`
	Group      string `json:"group"`
	Shift      string `json:"shift"`

	Phone      string `json:"phone"`
	Blood      string `json:"blood,omitempty"`
	ProfilePic string `json:"profile_pic,omitempty"`

	// PasswordHash is the bcrypt digest. Never serialized.
	PasswordHash string `json:"-"`

	Role           Role    `json:"role"`
	PhonePrivacy   Privacy `json:"phone_privacy"`
	ProfilePrivacy Privacy `json:"profile_privacy"`

	Skills   []string  `json:"skills"`
	Projects []Project `json:"projects"`

	IsOnline  bool      `json:"is_online"`
	LastSeen  time.Time `json:"last_seen"`
	CreatedAt time.Time `json:"created_at"`
}

// HasSkill reports whether the skill is already present.
func (s *Student) HasSkill(skill string) bool {
	for _, existing := range s.Skills {
		if existing == skill {
			return true
		}
	}
	return false
}
