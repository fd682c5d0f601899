package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/campushub-go/students"
)

func seedStudent(t *testing.T, store *students.MockStore, mutate func(*students.Student)) *students.Student {
	t.Helper()
	s := &students.Student{
		ID:             uuid.NewString(),
		StudentID:      "213454",
		FullName:       "Rahim Uddin",
		Department:     "CST",
		Session:        "21-22",
		Semester:       "5th",
		Group:          "A",
		Shift:          "1st",
		Phone:          "01712345678",
		Role:           students.RoleStudent,
		PhonePrivacy:   students.PrivacyPrivate,
		ProfilePrivacy: students.PrivacyPublic,
		Skills:         []string{},
		Projects:       []students.Project{},
		LastSeen:       time.Now(),
	}
	if mutate != nil {
		mutate(s)
	}
	require.NoError(t, store.Create(context.Background(), s))
	return s
}

// gateHarness wires the middleware in front of a handler that records the
// identity it received.
func gateHarness(tokens *TokenService, store *students.MockStore) (http.Handler, *Identity, *bool) {
	var got Identity
	var called bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return Middleware(tokens, store)(inner), &got, &called
}

func TestMiddleware_ValidToken(t *testing.T) {
	store := students.NewMockStore()
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	s := seedStudent(t, store, func(s *students.Student) {
		s.ProfilePrivacy = students.PrivacyPrivate
	})

	token, _, err := tokens.Issue(s.ID)
	require.NoError(t, err)

	handler, identity, called := gateHarness(tokens, store)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
	assert.Equal(t, s.ID, identity.AccountID)
	assert.Equal(t, students.RoleStudent, identity.Role)
	assert.Equal(t, students.PrivacyPrivate, identity.ProfilePrivacy)
}

func TestMiddleware_RejectsBeforeHandler(t *testing.T) {
	store := students.NewMockStore()
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	s := seedStudent(t, store, nil)

	valid, _, err := tokens.Issue(s.ID)
	require.NoError(t, err)

	expiredTokens := NewTokenService([]byte("test-secret"), -time.Minute)
	expired, _, err := expiredTokens.Issue(s.ID)
	require.NoError(t, err)

	otherSecret := NewTokenService([]byte("other-secret"), time.Hour)
	foreign, _, err := otherSecret.Issue(s.ID)
	require.NoError(t, err)

	// Structurally fine and unexpired, but the account does not exist. Must
	// look exactly like an invalid token, not an internal error.
	ghost, _, err := tokens.Issue(uuid.NewString())
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic " + valid},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
		{"account gone", "Bearer " + ghost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler, _, called := gateHarness(tokens, store)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, *called, "handler must not run when the gate rejects")
		})
	}
}
