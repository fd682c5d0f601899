package auth

import (
	"context"

	"github.com/user/campushub-go/students"
)

// Identity is the trusted context the gate attaches after resolving a bearer
// token to a live account. Downstream handlers and the authorization policy
// consume it; nothing else about the request is trusted.
type Identity struct {
	AccountID      string
	Role           students.Role
	ProfilePrivacy students.Privacy
}

// IsAdmin reports whether the caller carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == students.RoleAdmin
}

// contextKey is a private type so keys placed here cannot collide with keys
// from other packages.
type contextKey string

const identityContextKey contextKey = "auth_identity"

// NewContextWithIdentity returns a child context carrying the resolved
// identity.
func NewContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext extracts the identity set by the middleware. The second
// return value is false when the request never passed the gate.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}
