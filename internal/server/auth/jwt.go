// Package auth turns credentials into trust: bcrypt digests for stored
// passwords and HS256 JWTs for the bearer tokens presented on every
// protected request.
package auth

import (
	"errors"
	"time"

	"tasksync/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the authenticated
// user id. The id is the only thing the server trusts from a token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints a signed HS256 token for userID. A zero validity
// produces a token without an expiry claim, matching the legacy clients
// that never refresh.
func GenerateToken(userID string, secretKey []byte, validity time.Duration) (string, error) {
	claims := Claims{UserID: userID}
	if validity > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(validity))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the signature (and expiry, when present) and
// returns the embedded user id. Any parse or signature failure is reported
// as common.ErrorInvalidToken; callers must not leak the details.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrorInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrorInvalidToken
	}

	return claims.UserID, nil
}
