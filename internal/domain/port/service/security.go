package service

import "time"

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrInvalidCredentials when the password does not match the hash
	Compare(hash, password string) error
}

// AccessToken is a signed token and its expiry
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenManager issues and verifies access tokens
type TokenManager interface {
	Issue(userID uint64) (AccessToken, error)
	// Verify returns the user ID of a valid token or ErrUnauthorized
	Verify(token string) (uint64, error)
}
