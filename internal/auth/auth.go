// Package auth provides the password hashing and coarse RBAC used by the
// storage collaborator's user/user_roles tables (spec §6). It has no
// bearing on the cryptographic core: the CLI's optional --as-user flag
// gates split and recover on the named user's role (no password is
// checked there), and the shares themselves carry no such gate.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltSize     = 16
)

// ErrInvalidCredentials indicates a password did not match its stored hash.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// HashPassword derives an Argon2id hash for password, encoding the salt
// alongside it as "<salt-b64>$<hash-b64>" for storage in User.PasswordHash.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("auth: generating salt: %w", err)
	}
	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyPassword checks password against a hash produced by HashPassword.
func VerifyPassword(password, encoded string) error {
	parts := strings.SplitN(encoded, "$", 2)
	if len(parts) != 2 {
		return fmt.Errorf("auth: malformed password hash")
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return fmt.Errorf("auth: decoding salt: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("auth: decoding hash: %w", err)
	}
	got := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// Role names recognized by the RBAC skeleton.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// CanSplit reports whether a user holding roles may create a new split:
// true for the admin and user roles. It gates on role only; no label
// ownership is checked.
func CanSplit(roles []string) bool {
	return hasAnyRole(roles, RoleAdmin, RoleUser)
}

// CanRecover reports whether a user holding roles may recover a secret:
// true for the admin and user roles. It gates on role only; whether the
// user keeps any of the shares is not checked.
func CanRecover(roles []string) bool {
	return hasAnyRole(roles, RoleAdmin, RoleUser)
}

func hasAnyRole(roles []string, want ...string) bool {
	for _, r := range roles {
		for _, w := range want {
			if r == w {
				return true
			}
		}
	}
	return false
}
