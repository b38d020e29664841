package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/franthony00/VoiceLink/internal/api/handler"
	"github.com/franthony00/VoiceLink/internal/api/middleware"
	"github.com/franthony00/VoiceLink/internal/core/domain"
	"github.com/franthony00/VoiceLink/internal/core/ports"
)

// Dependencies carries everything the router needs. DB and RDB are nil when
// the deployment runs on the embedded store; the readiness probe then has
// nothing external to check.
type Dependencies struct {
	Auth      ports.AuthService
	Profiles  ports.ProfileService
	Messaging ports.MessagingService

	DB  *mongo.Database
	RDB *redis.Client

	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("voicelink"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	directoryHandler := handler.NewDirectoryHandler(deps.Auth, deps.Profiles)
	messagingHandler := handler.NewMessagingHandler(deps.Messaging, deps.Auth)

	authMW := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMW)
	e.POST("/auth/logout", authHandler.Logout, authMW)

	v1 := e.Group("/v1")

	// --- Directory routes (public: browsing needs no account) ---
	v1.GET("/voice-actors", directoryHandler.List)
	v1.GET("/voice-actors/:id", directoryHandler.Get)

	// --- Profile routes (each side edits only its own kind) ---
	profile := v1.Group("/profile", authMW)
	profile.GET("/voice-actor", profileHandler.GetVoiceActorProfile,
		middleware.RequireType(domain.UserTypeVoiceActor))
	profile.PUT("/voice-actor", profileHandler.PutVoiceActorProfile,
		middleware.RequireType(domain.UserTypeVoiceActor))
	profile.GET("/client", profileHandler.GetClientProfile,
		middleware.RequireType(domain.UserTypeClient))
	profile.PUT("/client", profileHandler.PutClientProfile,
		middleware.RequireType(domain.UserTypeClient))

	// --- Messaging routes ---
	conversations := v1.Group("/conversations", authMW)
	conversations.POST("", messagingHandler.Start)
	conversations.GET("", messagingHandler.List)
	conversations.GET("/:id/messages", messagingHandler.Messages)
	conversations.POST("/:id/messages", messagingHandler.Send)
	conversations.POST("/:id/read", messagingHandler.MarkRead)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.RDB)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
