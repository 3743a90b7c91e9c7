package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by curator tokens.
type Claims struct {
	CuratorID uint   `json:"curatorId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a curator JWT.
func GenerateToken(curatorID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		CuratorID: curatorID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
