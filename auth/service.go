// Package auth is responsible for handling authentication logic: account
// registration, login, password lifecycle, session token issuance and
// verification, and the request gate that turns a bearer token into a trusted
// identity.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/user/campushub-go/apperror"
	"github.com/user/campushub-go/students"
)

// invalidCredentials is the single message for every login failure. Unknown
// student ID and wrong password must be indistinguishable to the caller.
const invalidCredentials = "invalid student ID or password"

// Service provides authentication-related operations on top of the credential
// store and token service.
type Service struct {
	store  students.Store
	tokens *TokenService
}

// NewService creates an auth Service.
func NewService(store students.Store, tokens *TokenService) *Service {
	return &Service{store: store, tokens: tokens}
}

// Register validates the request, creates the account with default privacy
// flags, and mints a session token. Duplicate student IDs or phone numbers
// surface as ConflictError from the store.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	if len(req.Password) < students.MinPasswordLength {
		return nil, apperror.NewValidationError("password must be at least 6 characters", nil)
	}

	student := &students.Student{
		ID:             uuid.NewString(),
		StudentID:      req.StudentID,
		FullName:       req.FullName,
		Department:     req.Department,
		Session:        req.Session,
		Semester:       req.Semester,
		Group:          req.Group,
		Shift:          req.Shift,
		Phone:          req.Phone,
		Blood:          req.Blood,
		ProfilePic:     req.ProfilePic,
		Role:           students.RoleStudent,
		PhonePrivacy:   students.PrivacyPrivate,
		ProfilePrivacy: students.PrivacyPublic,
		Skills:         []string{},
		Projects:       []students.Project{},
		LastSeen:       time.Now(),
	}
	if err := student.Validate(); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	student.PasswordHash = hashed

	if err := s.store.Create(ctx, student); err != nil {
		return nil, err
	}

	return s.tokenResponse(student)
}

// Login authenticates by student ID and password. Both failure modes collapse
// to one generic AuthError so accounts cannot be enumerated. On success the
// presence fields are refreshed and a fresh token is issued.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	student, err := s.store.FindByStudentID(ctx, req.StudentID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError(invalidCredentials, nil)
		}
		return nil, err
	}

	if !CheckPassword(req.Password, student.PasswordHash) {
		return nil, apperror.NewAuthError(invalidCredentials, nil)
	}

	student.IsOnline = true
	student.LastSeen = time.Now()
	if err := s.store.Save(ctx, student); err != nil {
		return nil, err
	}

	return s.tokenResponse(student)
}

// ChangePassword replaces the password of the authenticated account after
// verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, accountID string, req ChangePasswordRequest) error {
	if len(req.NewPassword) < students.MinPasswordLength {
		return apperror.NewValidationError("password must be at least 6 characters", nil)
	}

	student, err := s.store.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	if !CheckPassword(req.CurrentPassword, student.PasswordHash) {
		return apperror.NewBadRequestError("current password is incorrect", nil)
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	student.PasswordHash = hashed
	return s.store.Save(ctx, student)
}

// ResetPassword sets a new password for the account matching both the student
// ID and the phone number.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if len(req.NewPassword) < students.MinPasswordLength {
		return apperror.NewValidationError("password must be at least 6 characters", nil)
	}

	student, err := s.store.FindByStudentID(ctx, req.StudentID)
	if err != nil {
		return err
	}
	if student.Phone != req.Phone {
		return apperror.NewNotFoundError("student not found", nil)
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	student.PasswordHash = hashed
	return s.store.Save(ctx, student)
}

func (s *Service) tokenResponse(student *students.Student) (*TokenResponse, error) {
	token, expiresAt, err := s.tokens.Issue(student.ID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}
	return &TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.Unix(),
		User:      student,
	}, nil
}
