package auth

import (
	"github.com/user/campushub-go/apperror"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately above the library default: password hashing is
// the one operation that is meant to be slow.
const bcryptCost = 12

// HashPassword derives a salted bcrypt digest from a plaintext secret. Two
// calls with the same input produce different digests; both verify against
// the original secret. A hashing failure never yields a usable digest.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", apperror.NewInternalError("failed to hash password", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether the secret matches the stored digest.
// bcrypt performs the comparison in constant time with respect to the secret.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
