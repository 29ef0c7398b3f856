package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

var jwtSecret string

func SetJWTSecret(secret string) {
	jwtSecret = secret
}

func getJWTSecret() string {
	if jwtSecret == "" {
		panic("JWT secret is not set in config")
	}
	return jwtSecret
}

// Claims carried by tokens issued by the external auth provider.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func ParseJWTToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	secret := []byte(getJWTSecret())

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateTokenAndFetchUserID verifies a bearer token and returns the
// caller identity: the sub claim, falling back to email.
func ValidateTokenAndFetchUserID(token string) (bool, string, error) {
	claims, err := ParseJWTToken(token)
	if err != nil {
		return false, "", err
	}

	userID := claims.Subject
	if userID == "" {
		userID = claims.Email
	}
	return true, userID, nil
}

// ResolveIdentity returns ("user", id) when the request carries a valid
// bearer token, and ("ip", addr) otherwise. Absence of identity is not an
// error; anonymous callers are limited per network address instead.
func ResolveIdentity(c *gin.Context) (scope, identity string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if valid, userID, err := ValidateTokenAndFetchUserID(token); err == nil && valid && userID != "" {
			return "user", userID
		}
	}
	return "ip", GetClientIP(c)
}
