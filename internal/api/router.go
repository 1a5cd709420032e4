package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-api/internal/api/handler"
	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/service"
	"github.com/freelancehub/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/freelancehub/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/freelancehub/marketplace-api/internal/infrastructure/db/redis"
	"github.com/freelancehub/marketplace-api/internal/infrastructure/payment"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	jobCache := redisdb.NewJobCache(rdb)
	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	tokenService := service.NewTokenService(cfg.JWTSecret, service.DefaultTokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	profileService := service.NewProfileService(userRepo)
	jobService := service.NewJobService(jobRepo, jobCache, log)
	appService := service.NewApplicationService(appRepo, jobRepo, userRepo, log)
	paymentService := service.NewPaymentService(gateway, paymentRepo, cfg.Razorpay.KeySecret, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(profileService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	authed := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Job routes ---
	jobs := e.Group("/api/jobs")
	jobs.GET("", jobHandler.List)
	jobs.GET("/search", jobHandler.Search)
	jobs.GET("/my-jobs", jobHandler.MyJobs, authed)
	jobs.POST("", jobHandler.Create, authed, middleware.Require(domain.CapPostJob))

	// --- Application routes ---
	apps := e.Group("/api/applications", authed)
	apps.POST("/apply", appHandler.Apply, middleware.Require(domain.CapApplyToJob))
	apps.GET("/job/:jobId", appHandler.ListForJob)
	apps.GET("/my", appHandler.My)
	apps.PUT("/:id", appHandler.UpdateStatus, middleware.Require(domain.CapReviewApplications))

	// --- Freelancer directory ---
	freelancers := e.Group("/api/freelancers")
	freelancers.GET("", userHandler.List)
	freelancers.GET("/search", userHandler.Search)
	freelancers.GET("/:id", userHandler.Get)
	freelancers.PUT("/:id", userHandler.Update, authed)

	// --- Payment routes ---
	payments := e.Group("/api/payments")
	payments.POST("/create-order", paymentHandler.CreateOrder)
	payments.POST("/verify-payment", paymentHandler.VerifyPayment)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
