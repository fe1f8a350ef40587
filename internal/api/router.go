package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/challenge/todo-list-api/internal/api/handler"
	"github.com/challenge/todo-list-api/internal/api/middleware"
	"github.com/challenge/todo-list-api/internal/core/domain"
	"github.com/challenge/todo-list-api/internal/core/service"
	mongodb "github.com/challenge/todo-list-api/internal/infrastructure/db/mongo"
	redisdb "github.com/challenge/todo-list-api/internal/infrastructure/db/redis"
	"github.com/challenge/todo-list-api/internal/infrastructure/http/handlers"
	"github.com/challenge/todo-list-api/internal/pkg/hash"
	"github.com/challenge/todo-list-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *token.Codec, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	hasher := hash.NewBcryptHasher(hash.MinCost)
	profileCache := redisdb.NewProfileCache(rdb)

	authService := service.NewAuthService(userRepo, hasher, codec, log)
	userService := service.NewUserService(userRepo, authService, profileCache, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	authRequired := middleware.Auth(codec)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Task routes (authenticated; ownership enforced in the service) ---
	tasks := e.Group("/v1/tasks", authRequired)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PATCH("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- User routes (profile for everyone, CRUD for admins) ---
	users := e.Group("/v1/users", authRequired)
	users.GET("/me", userHandler.Me)

	admin := users.Group("", adminOnly)
	admin.GET("", userHandler.List)
	admin.POST("", userHandler.Create)
	admin.GET("/:id", userHandler.Get)
	admin.PATCH("/:id", userHandler.Update)
	admin.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
