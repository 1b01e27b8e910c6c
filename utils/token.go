package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"neighborwatch-be/session"
)

// Claims carried by an auth token.
type TokenClaims struct {
	Name  string
	Email string
	Role  session.Role
}

// GenerateToken signs an HS256 JWT carrying the actor's identity and
// role. Tokens expire in 72 hours.
func GenerateToken(secret string, claims TokenClaims) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT secret is not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name":  claims.Name,
		"email": claims.Email,
		"role":  string(claims.Role),
		"exp":   time.Now().Add(time.Hour * 72).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ParseToken validates a token string and returns its claims.
func ParseToken(secret, tokenString string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return TokenClaims{}, fmt.Errorf("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, fmt.Errorf("invalid token claims")
	}

	name, _ := mapClaims["name"].(string)
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	if email == "" {
		return TokenClaims{}, fmt.Errorf("invalid token claims")
	}

	return TokenClaims{Name: name, Email: email, Role: session.ParseRole(role)}, nil
}
