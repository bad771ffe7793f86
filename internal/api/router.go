package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sportsmeet/sportsmeet-api/internal/api/handler"
	"github.com/sportsmeet/sportsmeet-api/internal/api/middleware"
	"github.com/sportsmeet/sportsmeet-api/internal/core/ports"
	"github.com/sportsmeet/sportsmeet-api/internal/core/service"
	"github.com/sportsmeet/sportsmeet-api/internal/infrastructure/config"
	mongodb "github.com/sportsmeet/sportsmeet-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sportsmeet/sportsmeet-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route protection is decided here and nowhere else: a route is protected iff
// it is registered on the authorized group. Everything registered directly on
// e is public by construction.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, recorder ports.ActivityRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("sportsmeet"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sportRepo := mongodb.NewSportRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	revoker := redisdb.NewRevocationList(rdb)

	authService := service.NewAuthService(userRepo, revoker, recorder, cfg.JWTSecret, cfg.TokenTTL)
	eventService := service.NewEventService(eventRepo, sportRepo)

	authHandler := handler.NewAuthHandler(authService)
	sportHandler := handler.NewSportHandler(sportRepo)
	eventHandler := handler.NewEventHandler(eventService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/sports", sportHandler.List)
	e.GET("/sports/:id", sportHandler.Get)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Protected routes ---
	authorized := e.Group("", middleware.Auth(cfg.JWTSecret, revoker))
	authorized.POST("/auth/logout", authHandler.Logout)
	authorized.PATCH("/auth/profile", authHandler.UpdateProfile)

	authorized.POST("/events", eventHandler.Create)
	authorized.GET("/events", eventHandler.List)
	authorized.GET("/events/:id", eventHandler.Get)
	authorized.POST("/events/:id/join", eventHandler.Join)
	authorized.DELETE("/events/:id/leave", eventHandler.Leave)

	return e
}
