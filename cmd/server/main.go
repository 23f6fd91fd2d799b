package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/TSKVenkat/bookd-sub000/internal/config"
	"github.com/TSKVenkat/bookd-sub000/internal/database"
	"github.com/TSKVenkat/bookd-sub000/internal/handler"
	"github.com/TSKVenkat/bookd-sub000/internal/queue"
	"github.com/TSKVenkat/bookd-sub000/internal/repository"
	"github.com/TSKVenkat/bookd-sub000/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// A nil Redis client disables caching; the repositories handle it.
	cache := config.NewRedisClient()
	if cache == nil {
		log.Println("redis unavailable, layout cache disabled")
	}

	layoutRepo := repository.NewLayoutRepo(db, cache, cfg.LayoutCacheTTL)
	ticketTypeRepo := repository.NewTicketTypeRepo(db)

	h := handler.NewLayoutHandler(layoutRepo, ticketTypeRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.Register(e, h, cfg.JWTSecret)

	// Cache invalidation for layouts saved by other replicas.
	go func() {
		if err := queue.StartLayoutSavedConsumer(layoutRepo); err != nil {
			log.Printf("layout-consumer stopped: %v", err)
		}
	}()

	log.Printf("layout service listening on :%s (env=%s)", cfg.Port, cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
