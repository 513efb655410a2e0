package auth

import (
	"campus-hub/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "campus-hub"

// SessionClaims is the identity carried by a session token.
type SessionClaims struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies session tokens with a shared key.
type TokenIssuer struct {
	key      []byte
	duration time.Duration
}

func NewTokenIssuer(key string, duration time.Duration) TokenIssuer {
	return TokenIssuer{key: []byte(key), duration: duration}
}

// GenerateToken creates a signed HS256 token for identity, valid from now.
func (i TokenIssuer) GenerateToken(identity domain.Identity, now time.Time) (string, error) {
	claims := &SessionClaims{
		StudentID: identity.StudentID,
		Name:      identity.Name,
		Email:     identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.key)
}

// ValidateToken checks signature and expiry at time now and returns the
// identity it carries.
func (i TokenIssuer) ValidateToken(tokenString string, now time.Time) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return i.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return domain.Identity{}, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, jwt.ErrSignatureInvalid
	}
	return domain.Identity{
		ID:        claims.Subject,
		Name:      claims.Name,
		Email:     claims.Email,
		StudentID: claims.StudentID,
	}, nil
}
