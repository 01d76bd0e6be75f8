package helpers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Token failure reasons reported by InvalidTokenError.
const (
	TokenMalformed    = "malformed"
	TokenExpired      = "expired"
	TokenBadSignature = "bad_signature"
	TokenInvalid      = "invalid"
)

// InvalidTokenError is returned by Verify for any rejected token.
type InvalidTokenError struct {
	Reason string
	Err    error
}

func (e *InvalidTokenError) Error() string {
	return "invalid token: " + e.Reason
}

func (e *InvalidTokenError) Unwrap() error { return e.Err }

// JWTManager issues and verifies HS256 access tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issue signs a token bound to userID.
func (m *JWTManager) Issue(userID string) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	return s, exp, nil
}

// Verify checks signature, algorithm, issuer and expiry and returns the user id.
func (m *JWTManager) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", &InvalidTokenError{Reason: tokenReason(err), Err: err}
	}
	if !tkn.Valid || claims.UserID == "" {
		return "", &InvalidTokenError{Reason: TokenInvalid}
	}
	return claims.UserID, nil
}

func tokenReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return TokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return TokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return TokenBadSignature
	default:
		return TokenInvalid
	}
}
