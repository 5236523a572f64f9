package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"SubastasAPI/internal/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenTTL is how long an issued bearer token stays valid. There is no
// server-side session state, so tokens cannot be revoked before expiry.
const TokenTTL = 30 * time.Minute

const contextKeyUserID = "auth_user_id"

// Claims defines the JWT payload; the subject is the external user_id.
type Claims struct {
	jwt.RegisteredClaims
}

var jwtSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-please-change"
	}
	jwtSecret = []byte(secret)
}

// GenerateToken creates a signed bearer token for the given user id, valid
// for TokenTTL from now.
func GenerateToken(userID string) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "subastas-api",
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(jwtSecret)
}

// ParseToken checks signature and expiry and returns the subject user id.
// Malformed, tampered and expired tokens all collapse into the same
// ErrInvalidCredentials so callers cannot tell the cases apart.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidCredentials
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidCredentials
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", apperrors.ErrInvalidCredentials
	}
	return claims.Subject, nil
}

// JWTMiddleware returns an Echo middleware that validates the bearer token
// and stores the authenticated user id in the request context.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
			}
			parts := strings.Fields(auth)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization header"})
			}
			userID, err := ParseToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authentication credentials"})
			}
			c.Set(contextKeyUserID, userID)
			return next(c)
		}
	}
}

// GetUserID extracts the user id set by JWTMiddleware, or "" if the request
// did not pass through it.
func GetUserID(c echo.Context) string {
	v := c.Get(contextKeyUserID)
	if v == nil {
		return ""
	}
	if id, ok := v.(string); ok {
		return id
	}
	return ""
}
