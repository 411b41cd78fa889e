package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// UserClaim identifies the token subject. Kept as a nested object so the
// payload reads {"user":{"id":N}}, which is what the web client expects.
type UserClaim struct {
	ID int64 `json:"id"`
}

// Claims represents the JWT claims for DevConnect authentication.
type Claims struct {
	jwt.RegisteredClaims
	User UserClaim `json:"user"`
}

// GenerateToken creates a signed JWT token asserting the given user's identity.
func GenerateToken(userID int64, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "devconnect",
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		User: UserClaim{ID: userID},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a JWT token string, returning the user ID
// if valid. Expired, malformed, and badly signed tokens all yield
// ErrInvalidToken so callers cannot distinguish the failure mode.
func ValidateToken(tokenString, secret string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("devconnect"))
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.User.ID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.User.ID, nil
}
