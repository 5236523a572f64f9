package main

import (
	"context"

	"SubastasAPI/internal/db"
	"SubastasAPI/internal/repository"
	"SubastasAPI/internal/seed"
	"SubastasAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	args := ParseArgs()
	ctx := context.Background()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(ctx, args.DB)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	auctionRepo := repository.NewAuctionRepository(pool)
	itemRepo := repository.NewItemRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo)
	auctionSvc := services.NewAuctionService(auctionRepo, itemRepo)
	userSvc := services.NewUserService(userRepo, auctionRepo)

	if args.Seed {
		if err := seed.Run(ctx, auctionRepo, itemRepo); err != nil {
			log.WithError(err).Fatal("seeding failed")
		}
	}

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	api := e.Group("/api")

	registerAuthRoutes(api, authSvc)
	registerAuctionRoutes(api, auctionSvc)
	registerItemRoutes(api, auctionSvc)
	registerUserRoutes(api, userSvc)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + args.Port))
}
