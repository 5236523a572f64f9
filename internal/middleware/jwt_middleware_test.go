package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SubastasAPI/internal/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	subject, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", subject)
}

func TestParseTokenExpired(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestParseTokenWrongKey(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestParseTokenMalformed(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := ParseToken(tok)
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}
}

func TestParseTokenMissingSubject(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestJWTMiddlewareRejectsMissingAndBadHeaders(t *testing.T) {
	e := echo.New()
	h := JWTMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	cases := map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc123",
		"extra fields": "Bearer one two",
		"bad token":    "Bearer garbage",
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h(c), name)
		require.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}

func TestJWTMiddlewarePassesValidToken(t *testing.T) {
	e := echo.New()
	h := JWTMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, GetUserID(c))
	})

	token, err := GenerateToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-42", rec.Body.String())
}
