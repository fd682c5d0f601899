package students

import (
	"fmt"
	"regexp"

	"github.com/user/campushub-go/apperror"
)

// Field format rules. These mirror the registration contract: a 6-digit
// student ID, a national mobile number ("01" followed by 9 digits), a session
// in YY-YY form, and fixed enumerations for the academic fields.
var (
	studentIDPattern = regexp.MustCompile(`^\d{6}$`)
	phonePattern     = regexp.MustCompile(`^01\d{9}$`)
	sessionPattern   = regexp.MustCompile(`^\d{2}-\d{2}$`)
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

var departments = map[string]bool{
	"CST": true, "FOOD": true, "RAC": true, "AIDT": true, "MNT": true,
}

var semesters = map[string]bool{
	"1st": true, "2nd": true, "3rd": true, "4th": true,
	"5th": true, "6th": true, "7th": true, "8th": true,
}

var bloodGroups = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"O+": true, "O-": true, "AB+": true, "AB-": true,
}

// ValidStudentID reports whether id is a well-formed 6-digit student ID.
func ValidStudentID(id string) bool {
	return studentIDPattern.MatchString(id)
}

// ValidPhone reports whether phone matches the national mobile pattern.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidSession reports whether session matches the YY-YY format.
func ValidSession(session string) bool {
	return sessionPattern.MatchString(session)
}

// ValidDepartment reports whether dept is one of the known departments.
func ValidDepartment(dept string) bool {
	return departments[dept]
}

// ValidSemester reports whether sem is one of 1st..8th.
func ValidSemester(sem string) bool {
	return semesters[sem]
}

// ValidGroup reports whether g is group A or B.
func ValidGroup(g string) bool {
	return g == "A" || g == "B"
}

// ValidShift reports whether s is the 1st or 2nd shift.
func ValidShift(s string) bool {
	return s == "1st" || s == "2nd"
}

// ValidBlood reports whether b is a known blood group. Blood is optional, so
// the empty string is accepted.
func ValidBlood(b string) bool {
	return b == "" || bloodGroups[b]
}

// Validate checks every field of a new record against the format rules and
// returns a ValidationError naming the first offending field. Password length
// is checked separately at registration time because the record only ever
// holds the digest.
func (s *Student) Validate() error {
	switch {
	case !ValidStudentID(s.StudentID):
		return apperror.NewValidationError("invalid student ID format: must be 6 digits", nil)
	case s.FullName == "":
		return apperror.NewValidationError("full name is required", nil)
	case !ValidDepartment(s.Department):
		return apperror.NewValidationError(fmt.Sprintf("invalid department: %s", s.Department), nil)
	case !ValidSession(s.Session):
		return apperror.NewValidationError("invalid session format: must be YY-YY", nil)
	case !ValidSemester(s.Semester):
		return apperror.NewValidationError(fmt.Sprintf("invalid semester: %s", s.Semester), nil)
	case !ValidGroup(s.Group):
		return apperror.NewValidationError("invalid group: must be A or B", nil)
	case !ValidShift(s.Shift):
		return apperror.NewValidationError("invalid shift: must be 1st or 2nd", nil)
	case !ValidPhone(s.Phone):
		return apperror.NewValidationError("invalid phone number format", nil)
	case !ValidBlood(s.Blood):
		return apperror.NewValidationError(fmt.Sprintf("invalid blood group: %s", s.Blood), nil)
	case !s.PhonePrivacy.Valid():
		return apperror.NewValidationError("invalid phone privacy option", nil)
	case !s.ProfilePrivacy.Valid():
		return apperror.NewValidationError("invalid profile privacy option", nil)
	}
	return nil
}
