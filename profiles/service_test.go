package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/campushub-go/apperror"
	"github.com/user/campushub-go/auth"
	"github.com/user/campushub-go/students"
)

var studentIDSeq = 100000

func seedStudent(t *testing.T, store *students.MockStore, mutate func(*students.Student)) *students.Student {
	t.Helper()
	studentIDSeq++
	s := &students.Student{
		ID:             uuid.NewString(),
		StudentID:      intToSixDigits(studentIDSeq),
		FullName:       "Rahim Uddin",
		Department:     "CST",
		Session:        "21-22",
		Semester:       "5th",
		Group:          "A",
		Shift:          "1st",
		Phone:          "017" + intToSixDigits(studentIDSeq) + "00",
		Blood:          "O+",
		Role:           students.RoleStudent,
		PhonePrivacy:   students.PrivacyPrivate,
		ProfilePrivacy: students.PrivacyPublic,
		Skills:         []string{"Go"},
		Projects:       []students.Project{},
		LastSeen:       time.Now(),
	}
	if mutate != nil {
		mutate(s)
	}
	require.NoError(t, store.Create(context.Background(), s))
	return s
}

func intToSixDigits(n int) string {
	digits := "000000"
	b := []byte(digits)
	for i := 5; i >= 0 && n > 0; i-- {
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b)
}

func asViewer(s *students.Student) auth.Identity {
	return auth.Identity{AccountID: s.ID, Role: s.Role, ProfilePrivacy: s.ProfilePrivacy}
}

func newProfileService(t *testing.T) (*Service, *students.MockStore) {
	t.Helper()
	store := students.NewMockStore()
	return NewService(store), store
}

func TestGetProfile_PrivateProfile_OtherViewer(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, func(s *students.Student) {
		s.ProfilePrivacy = students.PrivacyPrivate
		s.PhonePrivacy = students.PrivacyPublic
		s.Projects = []students.Project{{ID: uuid.NewString(), Title: "Compiler"}}
	})
	viewer := seedStudent(t, store, nil)

	resp, err := svc.GetProfile(context.Background(), asViewer(viewer), target.ID)
	require.NoError(t, err)

	// Always-public academic fields stay visible.
	assert.Equal(t, target.StudentID, resp.StudentID)
	assert.Equal(t, "Rahim Uddin", resp.FullName)
	assert.Equal(t, "CST", resp.Department)
	assert.Equal(t, "O+", resp.Blood)

	// Gated fields are absent, not masked.
	assert.Nil(t, resp.Phone)
	assert.Nil(t, resp.Skills)
	assert.Nil(t, resp.Projects)
	assert.Empty(t, resp.ProfilePic)
}

func TestGetProfile_PublicProfilePrivatePhone(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil) // public profile, private phone
	viewer := seedStudent(t, store, nil)

	resp, err := svc.GetProfile(context.Background(), asViewer(viewer), target.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, resp.Skills)
	assert.NotNil(t, resp.Projects)
	assert.Nil(t, resp.Phone, "private phone stays hidden on a public profile")

	// The owner always sees their own phone.
	own, err := svc.GetProfile(context.Background(), asViewer(target), target.ID)
	require.NoError(t, err)
	require.NotNil(t, own.Phone)
	assert.Equal(t, target.Phone, *own.Phone)
}

func TestGetProfile_AdminReadsEverything(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, func(s *students.Student) {
		s.ProfilePrivacy = students.PrivacyPrivate
	})
	admin := seedStudent(t, store, func(s *students.Student) {
		s.Role = students.RoleAdmin
	})

	resp, err := svc.GetProfile(context.Background(), asViewer(admin), target.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, []string{"Go"}, resp.Skills)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc, store := newProfileService(t)
	viewer := seedStudent(t, store, nil)

	_, err := svc.GetProfile(context.Background(), asViewer(viewer), uuid.NewString())
	assert.True(t, apperror.IsNotFound(err))
}

func TestPrivacyToggle_TakesEffectImmediately(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)
	viewer := seedStudent(t, store, nil)

	before, err := svc.GetProfile(context.Background(), asViewer(viewer), target.ID)
	require.NoError(t, err)
	assert.NotNil(t, before.Skills)

	_, err = svc.SetProfilePrivacy(context.Background(), asViewer(target), target.ID, students.PrivacyPrivate)
	require.NoError(t, err)

	after, err := svc.GetProfile(context.Background(), asViewer(viewer), target.ID)
	require.NoError(t, err)
	assert.Nil(t, after.Skills, "toggle must be visible to the very next read")
}

func TestPrivacyToggle_OwnerOnly(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)
	other := seedStudent(t, store, nil)
	admin := seedStudent(t, store, func(s *students.Student) { s.Role = students.RoleAdmin })

	_, err := svc.SetProfilePrivacy(context.Background(), asViewer(other), target.ID, students.PrivacyPrivate)
	assert.True(t, apperror.IsUnauthorizedError(err))

	// Admin read override does not extend to writes.
	_, err = svc.SetPhonePrivacy(context.Background(), asViewer(admin), target.ID, students.PrivacyPublic)
	assert.True(t, apperror.IsUnauthorizedError(err))

	_, err = svc.SetPhonePrivacy(context.Background(), asViewer(target), target.ID, "friends-only")
	assert.True(t, apperror.IsValidationError(err))
}

func TestUpdateProfile(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)

	resp, err := svc.UpdateProfile(context.Background(), asViewer(target), target.ID, UpdateProfileRequest{
		FullName: "Karim Uddin",
		Phone:    "01912345678",
		Blood:    "A+",
	})
	require.NoError(t, err)
	assert.Equal(t, "Karim Uddin", resp.FullName)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, "01912345678", *resp.Phone)

	stored, err := store.FindByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, "01912345678", stored.Phone)
}

func TestUpdateProfile_PhoneCollision(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)
	other := seedStudent(t, store, nil)

	_, err := svc.UpdateProfile(context.Background(), asViewer(target), target.ID, UpdateProfileRequest{
		FullName: "Karim Uddin",
		Phone:    other.Phone,
		Blood:    "A+",
	})
	assert.True(t, apperror.IsConflictError(err), "expected conflict, got %v", err)

	// Keeping the own phone is not a collision.
	_, err = svc.UpdateProfile(context.Background(), asViewer(target), target.ID, UpdateProfileRequest{
		FullName: "Karim Uddin",
		Phone:    target.Phone,
		Blood:    "A+",
	})
	assert.NoError(t, err)
}

func TestUpdateProfile_Validation(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)

	_, err := svc.UpdateProfile(context.Background(), asViewer(target), target.ID, UpdateProfileRequest{
		FullName: "Karim Uddin",
		Phone:    "12345",
		Blood:    "A+",
	})
	assert.True(t, apperror.IsValidationError(err))

	_, err = svc.UpdateProfile(context.Background(), asViewer(target), target.ID, UpdateProfileRequest{
		Phone: "01912345678",
		Blood: "A+",
	})
	assert.True(t, apperror.IsValidationError(err), "missing full name")
}

func TestUpdateProfile_NonOwnerForbidden(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)
	other := seedStudent(t, store, nil)

	_, err := svc.UpdateProfile(context.Background(), asViewer(other), target.ID, UpdateProfileRequest{
		FullName: "Hijacked",
		Phone:    "01912345678",
		Blood:    "A+",
	})
	assert.True(t, apperror.IsUnauthorizedError(err))

	stored, err := store.FindByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", stored.FullName, "record must be unchanged")
}

func TestSkills(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)

	resp, err := svc.AddSkill(context.Background(), asViewer(target), target.ID, "PostgreSQL")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, resp.Skills)

	// The list is a set: re-adding is a no-op.
	resp, err = svc.AddSkill(context.Background(), asViewer(target), target.ID, "PostgreSQL")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, resp.Skills)

	resp, err = svc.RemoveSkill(context.Background(), asViewer(target), target.ID, "Go")
	require.NoError(t, err)
	assert.Equal(t, []string{"PostgreSQL"}, resp.Skills)
}

func TestSkills_NonOwnerForbidden(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)
	other := seedStudent(t, store, nil)

	_, err := svc.AddSkill(context.Background(), asViewer(other), target.ID, "Hacking")
	assert.True(t, apperror.IsUnauthorizedError(err))

	stored, err := store.FindByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, stored.Skills, "skill list must be unchanged")
}

func TestProjects(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)

	first, err := svc.AddProject(context.Background(), asViewer(target), target.ID, AddProjectRequest{
		Title:       "Compiler",
		Description: "A toy compiler",
		Link:        "https://example.com/compiler",
	})
	require.NoError(t, err)
	require.Len(t, first.Projects, 1)
	assert.NotEmpty(t, first.ProjectID)

	second, err := svc.AddProject(context.Background(), asViewer(target), target.ID, AddProjectRequest{
		Title:        "Scheduler",
		Description:  "Class routine scheduler",
		Technologies: []string{"Go", "PostgreSQL"},
	})
	require.NoError(t, err)
	require.Len(t, second.Projects, 2)
	assert.NotEqual(t, first.ProjectID, second.ProjectID, "project identifiers are unique")

	removed, err := svc.RemoveProject(context.Background(), asViewer(target), target.ID, first.ProjectID)
	require.NoError(t, err)
	require.Len(t, removed.Projects, 1)
	assert.Equal(t, "Scheduler", removed.Projects[0].Title)
}

func TestProjects_ValidationAndOwnership(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, nil)
	other := seedStudent(t, store, nil)

	_, err := svc.AddProject(context.Background(), asViewer(target), target.ID, AddProjectRequest{Title: "No description"})
	assert.True(t, apperror.IsValidationError(err))

	_, err = svc.AddProject(context.Background(), asViewer(other), target.ID, AddProjectRequest{
		Title:       "Sneaky",
		Description: "Should not land",
	})
	assert.True(t, apperror.IsUnauthorizedError(err))
}

func TestGetProfilePic(t *testing.T) {
	svc, store := newProfileService(t)
	target := seedStudent(t, store, func(s *students.Student) {
		s.ProfilePrivacy = students.PrivacyPrivate
		s.ProfilePic = "data:image/png;base64,abc"
	})
	other := seedStudent(t, store, nil)

	_, err := svc.GetProfilePic(context.Background(), asViewer(other), target.ID)
	assert.True(t, apperror.IsUnauthorizedError(err))

	pic, err := svc.GetProfilePic(context.Background(), asViewer(target), target.ID)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", pic.ProfilePic)
}
