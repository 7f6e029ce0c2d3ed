package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"villaniva/internal/config"
	"villaniva/internal/database"
	"villaniva/internal/logging"
	"villaniva/internal/metrics"
	"villaniva/internal/middleware"
	"villaniva/internal/modules/booking"
	"villaniva/internal/modules/contact"
	"villaniva/internal/modules/gallery"
	"villaniva/internal/modules/settings"
	"villaniva/internal/repository"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	if err := repository.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	bookingRepo := repository.NewBookingRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	bookingService := booking.NewService(bookingRepo, settingsRepo, logger)
	bookingHandler := booking.NewHandler(bookingService)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	galleryService := gallery.NewService(galleryRepo)
	galleryHandler := gallery.NewHandler(galleryService)

	contactHandler := contact.NewHandler(logger)

	metrics.Register()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(cfg.RateLimitWindow, cfg.RateLimitMax))

	start := time.Now()
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "OK",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"uptime":    time.Since(start).Seconds(),
			})
		})

		settingsHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		galleryHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
