package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/queue"
	"hotelbooking/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	hotelRepo := repository.NewHotelRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var publisher booking.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := queue.Connect(cfg.RabbitURL)
		if err != nil {
			log.Fatal(err)
		}
		defer p.Close()
		publisher = p
	}

	bookingService := booking.NewService(bookingRepo, ticketRepo, publisher)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(hotelRepo, ticketRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
