package auth

import "github.com/user/campushub-go/students"

// RegisterRequest carries everything required to create an account. Blood
// group and profile picture are optional.
type RegisterRequest struct {
	StudentID  string `json:"student_id" example:"213454"`
	FullName   string `json:"full_name" example:"Rahim Uddin"`
	Department string `json:"department" example:"CST"`
	Session    string `json:"session" example:"21-22"`
	Semester   string `json:"semester" example:"5th"`
	Group      string `json:"group" example:"A"`
	Shift      string `json:"shift" example:"1st"`
	Phone      string `json:"phone" example:"01712345678"`
	Blood      string `json:"blood,omitempty" example:"O+"`
	Password   string `json:"password" example:"strongpassword"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	StudentID string `json:"student_id" example:"213454"`
	Password  string `json:"password" example:"strongpassword"`
}

// ChangePasswordRequest carries a password change for the authenticated
// account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ResetPasswordRequest resets a forgotten password. Both identifiers must
// match the same account.
type ResetPasswordRequest struct {
	StudentID   string `json:"student_id" example:"213454"`
	Phone       string `json:"phone" example:"01712345678"`
	NewPassword string `json:"new_password"`
}

// TokenResponse is returned on successful registration or login.
type TokenResponse struct {
	Token     string            `json:"token"`
	TokenType string            `json:"token_type" example:"Bearer"`
	ExpiresAt int64             `json:"expires_at"`
	User      *students.Student `json:"user"`
}
