package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sweetshop/inventory-system/docs"
	"github.com/sweetshop/inventory-system/internal/api/handler"
	"github.com/sweetshop/inventory-system/internal/api/middleware"
	"github.com/sweetshop/inventory-system/internal/core/service"
	mongodb "github.com/sweetshop/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sweetshop/inventory-system/internal/infrastructure/db/redis"
)

// Options carries the settings the router needs beyond its infrastructure
// handles.
type Options struct {
	JWTSecret       string
	TokenTTL        time.Duration
	Debug           bool // include error detail in envelopes (non-production)
	LoginRateLimit  int64
	LoginRateWindow time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login throttling and the redis readiness check are then
// disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, movements service.MovementRecorder, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, opts.Debug)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sweetshop"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, opts.JWTSecret, opts.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	sweetRepo := mongodb.NewSweetRepository(db)
	sweetService := service.NewSweetService(sweetRepo, movements, log)
	sweetHandler := handler.NewSweetHandler(sweetService)

	authRequired := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RBAC("admin")

	var limiter middleware.AttemptLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, opts.LoginRateLimit, opts.LoginRateWindow)
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, middleware.RateLimit(limiter, log))

	// --- Catalog & inventory routes ---
	sweets := e.Group("/sweets", authRequired)
	sweets.POST("", sweetHandler.Create, adminOnly)
	sweets.GET("", sweetHandler.List)
	sweets.GET("/search", sweetHandler.Search)
	sweets.PUT("/:id", sweetHandler.Update, adminOnly)
	sweets.DELETE("/:id", sweetHandler.Delete, adminOnly)
	sweets.POST("/:id/purchase", sweetHandler.Purchase)
	sweets.POST("/:id/restock", sweetHandler.Restock, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
