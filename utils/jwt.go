package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"parcelo/config"

	"github.com/golang-jwt/jwt"
)

// Access tokens are minted by the hosted identity service; this service
// only validates them, using the provider's HS256 signing secret.

// TokenClaims is the subset of access-token claims the service consumes.
type TokenClaims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// ValidateAccessToken parses and validates an access token and returns its
// claims.
func ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	out := &TokenClaims{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}

// HashToken computes a SHA-256 hash of the token string. Revocation entries
// store hashes, never raw tokens.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
