// Package api assembles the HTTP surface: router, middleware chain and the
// central error handler.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/creatorhub/marketplace-api/docs"
	"github.com/creatorhub/marketplace-api/internal/api/handler"
	"github.com/creatorhub/marketplace-api/internal/api/middleware"
	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
	"github.com/creatorhub/marketplace-api/internal/core/service"
	"github.com/creatorhub/marketplace-api/internal/infrastructure/config"
	mongorepo "github.com/creatorhub/marketplace-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/creatorhub/marketplace-api/internal/infrastructure/db/redis"
)

// Dependencies carries the shared infrastructure the router wires handlers
// onto. Everything request-scoped (repositories, services, handlers) is
// built inside NewRouter; everything with its own lifecycle (connections,
// the notification dispatcher) is owned by the caller.
type Dependencies struct {
	Config        *config.Config
	Log           zerolog.Logger
	Mongo         *mongodriver.Database
	Redis         *redis.Client
	Gateway       ports.PaymentGateway
	Notifier      ports.Notifier
	Notifications ports.NotificationRepository
	HealthChecks  map[string]handler.HealthCheck
}

// NewRouter builds the echo instance with all routes and middleware wired.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// Repositories.
	users := mongorepo.NewUserRepository(deps.Mongo)
	creators := mongorepo.NewCreatorRepository(deps.Mongo)
	businesses := mongorepo.NewBusinessRepository(deps.Mongo)
	jobs := mongorepo.NewJobRepository(deps.Mongo)
	reviews := mongorepo.NewReviewRepository(deps.Mongo)
	rateLimits := mongorepo.NewRateLimitRepository(deps.Mongo)

	// Services.
	profileCache := redisinfra.NewProfileCache(deps.Redis, deps.Log)
	authService := service.NewAuthService(users, creators, businesses, deps.Config.JWTSecret, 0)
	identityService := service.NewIdentityService(users, creators, businesses, deps.Log)
	creatorService := service.NewCreatorService(creators, profileCache, deps.Log)
	businessService := service.NewBusinessService(businesses, deps.Log)
	jobService := service.NewJobService(jobs, businesses, deps.Notifier, deps.Log)
	reviewService := service.NewReviewService(reviews, creators, jobs, deps.Notifier, deps.Log)
	billingService := service.NewBillingService(businesses, deps.Gateway, deps.Notifier,
		deps.Config.Stripe.PriceIDPro, deps.Log)
	rateLimiter := service.NewRateLimitService(rateLimits, deps.Log)

	// Handlers.
	authHandler := handler.NewAuthHandler(authService)
	creatorHandler := handler.NewCreatorHandler(creatorService)
	businessHandler := handler.NewBusinessHandler(businessService)
	jobHandler := handler.NewJobHandler(jobService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	billingHandler := handler.NewBillingHandler(billingService)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	identityHandler := handler.NewIdentityHandler()
	healthHandler := handler.NewHealthHandler(deps.HealthChecks)

	// Operational endpoints: probes, metrics, API docs.
	e.GET("/health/live", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Provider webhooks authenticate by signature, not by session, so the
	// route is registered outside the authenticated group.
	e.POST("/api/v1/webhooks/stripe", billingHandler.Webhook)

	// Unauthenticated auth endpoints carry the strict limiter.
	auth := e.Group("/api/v1/auth",
		middleware.RateLimit(rateLimiter, service.AuthLimit))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Everything else requires a session. The api limiter runs before token
	// validation so abusive callers are throttled regardless of credentials.
	v1 := e.Group("/api/v1",
		middleware.RateLimit(rateLimiter, service.APILimit),
		middleware.Auth(deps.Config.JWTSecret),
		middleware.Identity(identityService))

	v1.GET("/me", identityHandler.Me)

	// Profile-bound routes admit only the role that owns the profile: an
	// admin principal carries no creator or business id, so "me", create and
	// billing endpoints have nothing to act on for it. Admins stay on the
	// moderation routes (status changes, deletes), which the services accept
	// for any job or review.
	v1.GET("/creators", creatorHandler.List)
	v1.GET("/creators/me", creatorHandler.GetMe,
		middleware.RequireRoles(domain.RoleCreator))
	v1.PUT("/creators/me", creatorHandler.UpdateMe,
		middleware.RequireRoles(domain.RoleCreator))
	v1.GET("/creators/:id", creatorHandler.Get)
	v1.GET("/creators/:id/reviews", reviewHandler.ListForCreator)

	v1.GET("/businesses/me", businessHandler.GetMe,
		middleware.RequireRoles(domain.RoleBusiness))
	v1.PUT("/businesses/me", businessHandler.UpdateMe,
		middleware.RequireRoles(domain.RoleBusiness))
	v1.GET("/businesses/:id", businessHandler.Get)

	v1.GET("/jobs", jobHandler.List)
	v1.POST("/jobs", jobHandler.Create,
		middleware.RequireRoles(domain.RoleBusiness))
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.PATCH("/jobs/:id/status", jobHandler.ChangeStatus,
		middleware.RequireRoles(domain.RoleBusiness, domain.RoleAdmin))
	v1.DELETE("/jobs/:id", jobHandler.Delete,
		middleware.RequireRoles(domain.RoleBusiness, domain.RoleAdmin))

	v1.POST("/reviews", reviewHandler.Create,
		middleware.RequireRoles(domain.RoleBusiness))
	v1.DELETE("/reviews/:id", reviewHandler.Delete,
		middleware.RequireRoles(domain.RoleBusiness, domain.RoleAdmin))

	billing := v1.Group("/billing",
		middleware.RequireRoles(domain.RoleBusiness))
	billing.POST("/checkout", billingHandler.CreateCheckoutSession)
	billing.POST("/portal", billingHandler.CreatePortalSession)

	v1.GET("/notifications", notificationHandler.List)

	return e
}
