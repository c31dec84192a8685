package routes

import (
	"net/http"

	"orghub-backend/internal/api/handlers"
	"orghub-backend/internal/api/middleware"
	"orghub-backend/internal/auth"
	"orghub-backend/internal/config"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	// Initialize token signing and password hashing
	tokenService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTLifetime)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	authMiddleware := auth.NewAuthMiddleware(tokenService, membershipRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, tokenService, validator)
	organizationService := service.NewOrganizationService(organizationRepo, membershipRepo, validator)
	membershipService := service.NewMembershipService(membershipRepo, userRepo, validator)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	memberHandler := handlers.NewMemberHandler(membershipService)

	// Health check route
	router.GET("/health", handlers.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rate limiters: one budget for the API at large, a stricter one for
	// credential endpoints
	apiLimiter := middleware.APIRateLimiter(cfg.APIRateLimit, cfg.RateLimitWindow)
	authLimiter := middleware.AuthRateLimiter(cfg.AuthRateLimit, cfg.RateLimitWindow)

	api := router.Group("/api")
	api.Use(apiLimiter.Middleware())
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authLimiter.Middleware(), authHandler.Register)
			authRoutes.POST("/login", authLimiter.Middleware(), authHandler.Login)
			authRoutes.GET("/profile", authMiddleware.RequireAuth(), authHandler.Profile)
		}

		orgs := api.Group("/organizations")
		orgs.Use(authMiddleware.RequireAuth())
		{
			orgs.POST("", organizationHandler.Create)
			orgs.GET("", organizationHandler.List)

			org := orgs.Group("/:organizationId")
			org.Use(authMiddleware.RequireMembership())
			{
				org.GET("", organizationHandler.Get)
				org.PUT("", authMiddleware.RequireAdmin(), organizationHandler.Update)
				org.DELETE("", authMiddleware.RequireOwner(), organizationHandler.Delete)

				members := org.Group("/members")
				{
					members.GET("", memberHandler.List)
					members.POST("", authMiddleware.RequireAdmin(), memberHandler.Add)
					members.PUT("/:memberId", authMiddleware.RequireAdmin(), memberHandler.UpdateRole)
					members.DELETE("/:memberId", authMiddleware.RequireAdmin(), memberHandler.Remove)
				}
			}
		}
	}

	// Unknown routes answer with the same envelope as everything else
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return router, nil
}
