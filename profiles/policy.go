// Package profiles implements privacy-gated profile access: a single
// authorization policy consumed by every read and write path, the service
// that applies it, and the HTTP controllers. The policy replaces per-route
// privacy branching with one decision function, so no handler carries its own
// visibility logic.
package profiles

import (
	"github.com/user/campushub-go/auth"
	"github.com/user/campushub-go/students"
)

// ViewerClass is the resolved relationship between the caller and the target
// profile. Precedence is owner, then admin, then other; the first match wins.
type ViewerClass int

const (
	// ViewerOwner is the account whose ID matches the caller's identity.
	ViewerOwner ViewerClass = iota
	// ViewerAdmin is a non-owner caller carrying the admin role. Admins get
	// full read but no write: mutation requires ownership regardless of role.
	ViewerAdmin
	// ViewerOther is any other authenticated caller.
	ViewerOther
)

// Access is the per-request visibility and mutability decision for one
// (viewer, target) pair. Withheld fields are omitted from responses entirely,
// never masked with placeholder values.
type Access struct {
	Class ViewerClass

	// ViewSections grants the privacy-gated profile sections: skills,
	// projects, and the profile picture. The always-public academic fields
	// (student ID, full name, department, session, group, shift, semester,
	// blood) are never gated and need no grant.
	ViewSections bool

	// ViewPhone grants the phone field. It is gated independently of the
	// profile flag: a public profile with a private phone still hides only
	// the phone.
	ViewPhone bool

	// Mutate grants writes to the owner-mutable fields. Only the owner ever
	// holds it.
	Mutate bool
}

// Classify resolves the viewer class for a caller and target.
func Classify(viewer auth.Identity, target *students.Student) ViewerClass {
	switch {
	case viewer.AccountID == target.ID:
		return ViewerOwner
	case viewer.IsAdmin():
		return ViewerAdmin
	default:
		return ViewerOther
	}
}

// DecideAccess computes the access decision from the viewer class and the
// target's two privacy flags. It reads the record as it is now; decisions are
// never cached, so a privacy toggle takes effect for the very next request.
func DecideAccess(viewer auth.Identity, target *students.Student) Access {
	switch Classify(viewer, target) {
	case ViewerOwner:
		return Access{Class: ViewerOwner, ViewSections: true, ViewPhone: true, Mutate: true}
	case ViewerAdmin:
		return Access{Class: ViewerAdmin, ViewSections: true, ViewPhone: true}
	default:
		sections := target.ProfilePrivacy == students.PrivacyPublic
		return Access{
			Class:        ViewerOther,
			ViewSections: sections,
			ViewPhone:    sections && target.PhonePrivacy == students.PrivacyPublic,
		}
	}
}
