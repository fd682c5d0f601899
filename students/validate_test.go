package students

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/campushub-go/apperror"
)

func TestFieldFormats(t *testing.T) {
	assert.True(t, ValidStudentID("213454"))
	assert.False(t, ValidStudentID("21345"))
	assert.False(t, ValidStudentID("2134545"))
	assert.False(t, ValidStudentID("21345a"))

	assert.True(t, ValidPhone("01712345678"))
	assert.False(t, ValidPhone("0171234567"))   // too short
	assert.False(t, ValidPhone("017123456789")) // too long
	assert.False(t, ValidPhone("02712345678"))  // wrong prefix
	assert.False(t, ValidPhone("+8801712345678"))

	assert.True(t, ValidSession("21-22"))
	assert.False(t, ValidSession("2021-22"))
	assert.False(t, ValidSession("21/22"))

	assert.True(t, ValidDepartment("CST"))
	assert.False(t, ValidDepartment("EEE"))

	assert.True(t, ValidSemester("8th"))
	assert.False(t, ValidSemester("9th"))

	assert.True(t, ValidGroup("A"))
	assert.True(t, ValidGroup("B"))
	assert.False(t, ValidGroup("C"))

	assert.True(t, ValidShift("1st"))
	assert.True(t, ValidShift("2nd"))
	assert.False(t, ValidShift("3rd"))

	assert.True(t, ValidBlood("AB-"))
	assert.True(t, ValidBlood(""), "blood is optional")
	assert.False(t, ValidBlood("XY+"))
}

func validStudent() *Student {
	return &Student{
		ID:             "some-id",
		StudentID:      "213454",
		FullName:       "Rahim Uddin",
		Department:     "CST",
		Session:        "21-22",
		Semester:       "5th",
		Group:          "A",
		Shift:          "1st",
		Phone:          "01712345678",
		Blood:          "O+",
		PhonePrivacy:   PrivacyPrivate,
		ProfilePrivacy: PrivacyPublic,
	}
}

func TestStudentValidate(t *testing.T) {
	assert.NoError(t, validStudent().Validate())

	s := validStudent()
	s.StudentID = "abc"
	assert.True(t, apperror.IsValidationError(s.Validate()))

	s = validStudent()
	s.PhonePrivacy = "secret"
	assert.True(t, apperror.IsValidationError(s.Validate()))

	s = validStudent()
	s.Blood = ""
	assert.NoError(t, s.Validate(), "blood group is optional")
}

func TestHasSkill(t *testing.T) {
	s := &Student{Skills: []string{"Go", "SQL"}}
	assert.True(t, s.HasSkill("Go"))
	assert.False(t, s.HasSkill("Rust"))
}
