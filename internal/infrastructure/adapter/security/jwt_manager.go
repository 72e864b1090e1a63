package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "personal-finances"

// JWTManager issues and verifies HS256 signed access tokens
type JWTManager struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTManager creates a token manager signing with secret
func NewJWTManager(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) *JWTManager {
	return &JWTManager{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue signs a token for the user
func (m *JWTManager) Issue(userID uint64) (service.AccessToken, error) {
	now := m.timeProvider.Now()
	expiresAt := now.Add(m.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return service.AccessToken{}, fmt.Errorf("%w: sign token: %s", errs.ErrInternalServer, err.Error())
	}

	return service.AccessToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify validates the signature and expiry and returns the user ID
func (m *JWTManager) Verify(token string) (uint64, error) {
	if token == "" {
		return 0, errs.ErrUnauthorized
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.timeProvider.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: token expired", errs.ErrUnauthorized)
		}
		return 0, errs.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, errs.ErrUnauthorized
	}
	return userID, nil
}
