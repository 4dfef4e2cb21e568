package routes

import (
	"OncoCare/cache"
	"OncoCare/config"
	"OncoCare/controllers"
	"OncoCare/handlers"
	"OncoCare/llm"
	"OncoCare/middlewares"
	"OncoCare/repositories"
	"OncoCare/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.example.com", "https://example-dev.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	userRepo := repositories.NewUserRepository(db, cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	screeningRepo := repositories.NewScreeningRepository(cache)
	articleRepo := repositories.NewArticleRepository(cache)
	videoRepo := repositories.NewVideoRepository(cache)
	chatRepo := repositories.NewChatRepository(cache)

	userService := services.NewUserService(userRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	screeningService := services.NewScreeningService(screeningRepo)
	articleService := services.NewArticleService(articleRepo)
	videoService := services.NewVideoService(videoRepo)
	chatService := services.NewChatService(chatRepo, llm.NewOpenAIClient(config.OpenAIKey, config.OpenAIModel))

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	screeningHandler := handlers.NewScreeningHandler(screeningService)
	articleHandler := handlers.NewArticleHandler(articleService)
	videoHandler := handlers.NewVideoHandler(videoService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Register routes
	controllers.SetupCareRoutes(router, userHandler, appointmentHandler, screeningHandler)
	controllers.SetupContentRoutes(router, articleHandler, videoHandler, chatHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
