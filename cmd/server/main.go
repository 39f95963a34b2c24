package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/roysiu-gh/restam/internal/auth"
	"github.com/roysiu-gh/restam/internal/config"
	"github.com/roysiu-gh/restam/internal/handler"
	"github.com/roysiu-gh/restam/internal/middleware"
	"github.com/roysiu-gh/restam/internal/queue"
	"github.com/roysiu-gh/restam/internal/router"
	"github.com/roysiu-gh/restam/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()

	venue, err := config.LoadVenue(cfg.VenueConfig)
	if err != nil {
		log.Fatalf("load venue: %v", err)
	}
	menu, err := config.LoadMenu(cfg.MenuConfig)
	if err != nil {
		log.Fatalf("load menu: %v", err)
	}
	staff, err := auth.NewStore(cfg.StaffUsers, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("load staff accounts: %v", err)
	}

	svc := service.New(venue, menu, cfg.MealsStrict, queue.NewPublisher())

	// Background consumer keeps logs/booking.log in sync with lifecycle
	// events.  It reconnects on its own; a missing broker only costs the
	// event log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()

	// Redis backs rate limiting and the public response cache.  When the
	// client cannot connect both degrade to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, staff), cfg.JWTSecret)
	router.RegisterBookings(e, handler.NewBookingHandler(svc), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewPublicHandler(svc),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	addr := ":" + cfg.Port
	log.Printf("%s listening on %s (env=%s)", venue.Name, addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
