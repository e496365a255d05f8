package main

import (
	"log"
	"time"

	"github.com/mitchell1972/examCoachNG/internal/config"
	"github.com/mitchell1972/examCoachNG/internal/database"
	"github.com/mitchell1972/examCoachNG/internal/handlers"
	"github.com/mitchell1972/examCoachNG/internal/middleware"
	"github.com/mitchell1972/examCoachNG/internal/ratelimit"
	"github.com/mitchell1972/examCoachNG/internal/services"

	_ "github.com/mitchell1972/examCoachNG/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           ExamCoach JAMB CBT API
// @version         1.0
// @description     Practice-session backend for JAMB CBT preparation
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db)
	questionService := services.NewQuestionService(db)
	sessionService := services.NewSessionService(db)
	attemptService := services.NewAttemptService(db)
	analyticsService := services.NewAnalyticsService(db)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	sessionHandler := handlers.NewSessionHandler(sessionService, attemptService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsOrigins := cfg.CORSOrigins
	if !cfg.IsProduction() {
		corsOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", handlers.Health(cfg.Environment))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(authService))
	api.Use(middleware.RateLimit(
		newCounter(cfg),
		int64(cfg.RateLimitMax),
		time.Duration(cfg.RateLimitWindowMs)*time.Millisecond,
	))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		}

		users := api.Group("/users")
		{
			users.POST("/register", userHandler.RegisterUser)
			users.GET("/by-phone/:phone", userHandler.GetUserByPhone)
		}

		questions := api.Group("/questions")
		{
			questions.GET("/subjects", questionHandler.ListSubjects)
			questions.GET("/question/:id", questionHandler.GetQuestion)
			questions.GET("/:subjectCode", questionHandler.ListQuestions)
			questions.GET("/:subjectCode/stats", questionHandler.GetQuestionStats)
		}

		sessions := api.Group("/sessions")
		{
			sessions.POST("/create", sessionHandler.CreateSession)
			sessions.GET("/questions/:sessionId", sessionHandler.GetSessionQuestions)
			sessions.POST("/answer", sessionHandler.SubmitAnswer)
			sessions.POST("/complete/:sessionId", sessionHandler.CompleteSession)
		}

		analytics := api.Group("/analytics")
		analytics.Use(middleware.JWTAuth(authService))
		{
			analytics.GET("/platform-stats", analyticsHandler.PlatformStats)
			analytics.GET("/subject-performance", analyticsHandler.SubjectPerformance)
			analytics.GET("/difficulty-stats", analyticsHandler.DifficultyStats)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newCounter picks the rate-limit backend: Redis when configured, else a
// process-local counter.
func newCounter(cfg *config.Config) ratelimit.Counter {
	if cfg.RedisURL == "" {
		return ratelimit.NewMemoryCounter()
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, falling back to in-memory rate limiting: %v", err)
		return ratelimit.NewMemoryCounter()
	}
	log.Println("rate limiting backed by redis")
	return ratelimit.NewRedisCounter(redis.NewClient(opts))
}
