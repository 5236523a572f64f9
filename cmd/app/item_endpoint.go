package main

import (
	"errors"
	"net/http"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerItemRoutes mounts the public lot endpoints.
//
//	GET /auctions/:auction_id/items -> lots of an auction (empty list for unknown auctions)
//	GET /items/:item_id             -> lot detail
func registerItemRoutes(g *echo.Group, svc *services.AuctionService) {
	g.GET("/auctions/:auction_id/items", listAuctionItemsHandler(svc))
	g.GET("/items/:item_id", getItemHandler(svc))
}

func listAuctionItemsHandler(svc *services.AuctionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := svc.ListItems(c.Request().Context(), c.Param("auction_id"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, items)
	}
}

func getItemHandler(svc *services.AuctionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		item, err := svc.GetItem(c.Request().Context(), c.Param("item_id"))
		if err != nil {
			if errors.Is(err, apperrors.ErrItemNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, item)
	}
}
