// Package auth mints and verifies the signed token that the identity store
// persists as its session snapshot. Signing the snapshot lets hydration
// reject a session slot that was tampered with or has expired, instead of
// trusting whatever bytes are on disk.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hiresphere/hiresphere/internal/common"
)

// Claims carries the account id of the authenticated user.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// TokenManager signs and parses session tokens with an HS256 secret.
type TokenManager struct {
	secret   []byte
	validity time.Duration
}

func NewTokenManager(secret []byte, validity time.Duration) *TokenManager {
	return &TokenManager{secret: secret, validity: validity}
}

// Mint returns a signed token for the given account id.
func (m *TokenManager) Mint(accountID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.validity)),
		},
		AccountID: accountID,
	})
	return token.SignedString(m.secret)
}

// AccountID extracts the account id from a token, verifying the signature
// and expiry. Invalid tokens yield common.ErrNotAuthenticated.
func (m *TokenManager) AccountID(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrNotAuthenticated
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrNotAuthenticated
	}

	return claims.AccountID, nil
}
