package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"padel-booking/internal/config"
	"padel-booking/internal/delivery/http/handler"
	"padel-booking/internal/infrastructure/database/postgres"
	"padel-booking/internal/logger"
	"padel-booking/internal/mailer"
	"padel-booking/internal/metrics"
	"padel-booking/internal/middleware"
	"padel-booking/internal/usecase/auth"
	"padel-booking/internal/usecase/inquiry"
	"padel-booking/internal/usecase/reservation"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, m mailer.Mailer) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Register()

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))
	router.Use(metrics.Middleware())

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})
	router.GET("/metrics", metrics.Handler())

	userRepository := postgres.NewUserRepository(db)
	courtRepository := postgres.NewCourtRepository(db)
	reservationRepository := postgres.NewReservationRepository(db)
	inquiryRepository := postgres.NewInquiryRepository(db)

	authService := auth.NewService(userRepository, m, cfg)
	authHandler := handler.NewAuthHandler(authService)

	inquiryService := inquiry.NewService(inquiryRepository, m)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)

	reservationService := reservation.NewService(reservationRepository, courtRepository, m)
	reservationHandler := handler.NewReservationHandler(reservationService)

	api := router.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		inquiryHandler.RegisterRoutes(api)
		reservationHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}
	}

	registerSPA(router, cfg.Server.StaticDir)

	logger.Info("All routes initialized")
	return router
}

// registerSPA serves the compiled frontend bundle for every non-API path,
// falling back to index.html so client-side routing works on deep links.
func registerSPA(router *gin.Engine, staticDir string) {
	indexPath := filepath.Join(staticDir, "index.html")

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.String(http.StatusNotFound, "Not found.")
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		c.File(indexPath)
	})
}
