package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/campushub-go/auth"
	"github.com/user/campushub-go/students"
)

func target(profilePrivacy, phonePrivacy students.Privacy) *students.Student {
	return &students.Student{
		ID:             "target-id",
		ProfilePrivacy: profilePrivacy,
		PhonePrivacy:   phonePrivacy,
	}
}

func TestClassify_Precedence(t *testing.T) {
	s := target(students.PrivacyPublic, students.PrivacyPublic)

	owner := auth.Identity{AccountID: "target-id", Role: students.RoleAdmin}
	admin := auth.Identity{AccountID: "someone-else", Role: students.RoleAdmin}
	other := auth.Identity{AccountID: "someone-else", Role: students.RoleStudent}

	// An admin viewing their own profile is the owner: first match wins.
	assert.Equal(t, ViewerOwner, Classify(owner, s))
	assert.Equal(t, ViewerAdmin, Classify(admin, s))
	assert.Equal(t, ViewerOther, Classify(other, s))
}

func TestDecideAccess_Matrix(t *testing.T) {
	owner := auth.Identity{AccountID: "target-id", Role: students.RoleStudent}
	admin := auth.Identity{AccountID: "other-id", Role: students.RoleAdmin}
	other := auth.Identity{AccountID: "other-id", Role: students.RoleStudent}

	cases := []struct {
		name         string
		viewer       auth.Identity
		profile      students.Privacy
		phone        students.Privacy
		wantSections bool
		wantPhone    bool
		wantMutate   bool
	}{
		{"owner sees and mutates everything", owner, students.PrivacyPrivate, students.PrivacyPrivate, true, true, true},
		{"admin reads everything, writes nothing", admin, students.PrivacyPrivate, students.PrivacyPrivate, true, true, false},
		{"other on private profile gets nothing gated", other, students.PrivacyPrivate, students.PrivacyPublic, false, false, false},
		{"other on public profile sees sections", other, students.PrivacyPublic, students.PrivacyPrivate, true, false, false},
		{"other on fully public profile sees phone too", other, students.PrivacyPublic, students.PrivacyPublic, true, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			access := DecideAccess(tc.viewer, target(tc.profile, tc.phone))
			assert.Equal(t, tc.wantSections, access.ViewSections, "sections")
			assert.Equal(t, tc.wantPhone, access.ViewPhone, "phone")
			assert.Equal(t, tc.wantMutate, access.Mutate, "mutate")
		})
	}
}

func TestDecideAccess_FlagsAreIndependent(t *testing.T) {
	other := auth.Identity{AccountID: "other-id", Role: students.RoleStudent}

	// A public profile with a private phone hides only the phone.
	access := DecideAccess(other, target(students.PrivacyPublic, students.PrivacyPrivate))
	assert.True(t, access.ViewSections)
	assert.False(t, access.ViewPhone)

	// A private profile hides the phone even when the phone flag is public.
	access = DecideAccess(other, target(students.PrivacyPrivate, students.PrivacyPublic))
	assert.False(t, access.ViewSections)
	assert.False(t, access.ViewPhone)
}
