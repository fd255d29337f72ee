package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/admin"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/feed"
	"hotelbooking/internal/modules/hotel"
	"hotelbooking/internal/modules/notification"
	"hotelbooking/internal/modules/upload"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	outboxRepo := repository.NewOutboxRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	uploadRepo := upload.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	notifService := notification.NewService(outboxRepo)
	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUser,
		Password:  cfg.SMTPPass,
		FromName:  cfg.FromName,
		FromEmail: cfg.FromEmail,
	})
	dispatcher := notification.NewDispatcher(outboxRepo, mailer, cfg.OutboxInterval)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(listingRepo, cfg.StaticURLBase)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, listingRepo, userRepo, notifService)
	bookingHandler := booking.NewHandler(bookingService)

	hotelService := hotel.NewService(submissionRepo, listingRepo, bookingRepo)
	hotelHandler := hotel.NewHandler(hotelService)

	adminService := admin.NewService(approvalRepo, submissionRepo, userRepo, statsRepo)
	adminHandler := admin.NewHandler(adminService)

	uploadService := upload.NewService(uploadRepo, cfg.UploadsDir, cfg.StaticURLBase)
	uploadHandler := upload.NewHandler(uploadService)

	hub := feed.NewHub()
	feedService := feed.NewService(hub, bookingService, cfg.FeedInterval)
	feedHandler := feed.NewHandler(hub, j, feedService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dispatcher.Run(ctx)
	go feedService.Run(ctx)

	r := gin.New()
	r.Use(middleware.ErrorLogger(), middleware.CORS())

	uploadHandler.RegisterPublicRoutes(r, cfg.StaticURLBase)
	r.GET("/ws/trips", feedHandler.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			uploadHandler.RegisterProtectedRoutes(protected)

			owners := protected.Group("/")
			owners.Use(middleware.RequireRole("hotel_owner"))
			{
				hotelHandler.RegisterRoutes(owners)
			}

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
