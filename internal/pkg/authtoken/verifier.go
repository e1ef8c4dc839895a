// Package authtoken verifies access tokens minted by the external identity
// provider. This service never issues tokens; it only checks the provider's
// HS256 signature and extracts the subject.
package authtoken

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Identity struct {
	UserID uuid.UUID
	Email  string
}

type Verifier interface {
	Verify(tokenString string) (Identity, error)
}

type HMACVerifier struct {
	secret []byte
	now    func() time.Time
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret), now: time.Now}
}

type providerClaims struct {
	Email string `json:"email,omitempty"`
	jwtlib.RegisteredClaims
}

func (v *HMACVerifier) Verify(tokenString string) (Identity, error) {
	claims := &providerClaims{}

	token, err := jwtlib.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwtlib.Token) (any, error) {
			if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
				return nil, ErrTokenInvalid
			}
			return v.secret, nil
		},
		jwtlib.WithTimeFunc(v.now),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}
	if !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}

	return Identity{UserID: userID, Email: claims.Email}, nil
}
