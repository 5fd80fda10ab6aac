package auth

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role required by the administrative endpoints
const RoleAdmin = "admin"

// Claims are the claims of an access token
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and checks HS256 access tokens
type TokenManager struct {
	secret       []byte
	issuer       string
	timeProvider coreport.TimeProvider
}

// NewTokenManager creates a token manager. The secret must not be empty.
func NewTokenManager(secret, issuer string, timeProvider coreport.TimeProvider) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: jwt secret is required", errs.ErrConfiguration)
	}
	return &TokenManager{
		secret:       []byte(secret),
		issuer:       issuer,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token for subject with the given role, valid for ttl
func (tm *TokenManager) Issue(subject, role string, ttl time.Duration) (string, time.Time, error) {
	now := tm.timeProvider.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    tm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Parse validates the signature, expiry and issuer of a token and returns its claims
func (tm *TokenManager) Parse(token string) (*Claims, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(tm.timeProvider.Now),
		jwt.WithExpirationRequired(),
	}
	if tm.issuer != "" {
		opts = append(opts, jwt.WithIssuer(tm.issuer))
	}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return tm.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", errs.ErrAuthentication)
		}
		return nil, fmt.Errorf("%w: invalid token", errs.ErrAuthentication)
	}
	return claims, nil
}
