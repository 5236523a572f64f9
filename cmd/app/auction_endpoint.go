package main

import (
	"errors"
	"net/http"
	"strconv"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerAuctionRoutes mounts the public auction endpoints.
//
//	GET /auctions                  -> list, ordered by start date ascending
//	GET /auctions/:auction_id      -> detail
//	GET /search/auctions           -> filtered search (category, state, status, min_price, max_price)
func registerAuctionRoutes(g *echo.Group, svc *services.AuctionService) {
	g.GET("/auctions", listAuctionsHandler(svc))
	g.GET("/auctions/:auction_id", getAuctionHandler(svc))
	g.GET("/search/auctions", searchAuctionsHandler(svc))
}

func listAuctionsHandler(svc *services.AuctionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		auctions, err := svc.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, auctions)
	}
}

func getAuctionHandler(svc *services.AuctionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		auction, err := svc.Get(c.Request().Context(), c.Param("auction_id"))
		if err != nil {
			if errors.Is(err, apperrors.ErrAuctionNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "auction not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, auction)
	}
}

func searchAuctionsHandler(svc *services.AuctionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var f services.SearchFilter
		if v := c.QueryParam("category"); v != "" {
			f.Category = &v
		}
		if v := c.QueryParam("state"); v != "" {
			f.State = &v
		}
		if v := c.QueryParam("status"); v != "" {
			f.Status = &v
		}
		if v := c.QueryParam("min_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "min_price: invalid number"})
			}
			f.MinPrice = &p
		}
		if v := c.QueryParam("max_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_price: invalid number"})
			}
			f.MaxPrice = &p
		}

		auctions, err := svc.Search(c.Request().Context(), f)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, auctions)
	}
}
