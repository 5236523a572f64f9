package main

import (
	"errors"
	"net/http"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/middleware"
	"SubastasAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Phone    string  `json:"phone"`
	Company  *string `json:"company,omitempty"`
	Password string  `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		user, err := authSvc.Register(c.Request().Context(), services.RegisterInput{
			Email:    req.Email,
			FullName: req.FullName,
			Phone:    req.Phone,
			Company:  req.Company,
			Password: req.Password,
		})
		if err != nil {
			var ve *apperrors.ValidationError
			switch {
			case errors.As(err, &ve):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
			case errors.Is(err, apperrors.ErrEmailTaken):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already registered"})
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
			}
		}

		token, err := middleware.GenerateToken(user.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create token"})
		}
		return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		user, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect email or password"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}

		token, err := middleware.GenerateToken(user.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create token"})
		}
		return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService) {
	auth := g.Group("/auth")
	auth.POST("/register", registerHandler(authSvc))
	auth.POST("/login", loginHandler(authSvc))
}
