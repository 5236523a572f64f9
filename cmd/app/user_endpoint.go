package main

import (
	"errors"
	"net/http"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/middleware"
	"SubastasAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerUserRoutes mounts the bearer-token-gated user endpoints.
func registerUserRoutes(g *echo.Group, userSvc *services.UserService) {
	user := g.Group("/user")
	user.Use(middleware.JWTMiddleware())
	user.GET("/profile", profileHandler(userSvc))
	user.GET("/auctions", userAuctionsHandler(userSvc))
}

func profileHandler(userSvc *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := middleware.GetUserID(c)
		if userID == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		user, err := userSvc.Profile(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, user)
	}
}

func userAuctionsHandler(userSvc *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := middleware.GetUserID(c)
		if userID == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		auctions, err := userSvc.RegisteredAuctions(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, auctions)
	}
}
