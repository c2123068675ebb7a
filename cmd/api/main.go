// @title QuizForge API
// @version 1.0
// @description API for generating multiple-choice quizzes from PDFs and pasted text.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quizforge/cmd/api/docs"
	"quizforge/internal/adapter"
	"quizforge/internal/adapter/mailer"
	"quizforge/internal/adapter/openrouter"
	"quizforge/internal/adapter/pdftext"
	"quizforge/internal/adapter/storage"
	"quizforge/internal/cache"
	"quizforge/internal/config"
	"quizforge/internal/database"
	"quizforge/internal/domain"
	"quizforge/internal/handler"
	"quizforge/internal/logger"
	"quizforge/internal/middleware"
	"quizforge/internal/repository"
	"quizforge/internal/service"
	"quizforge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.Connect(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize repositories
	quizRepository := repository.NewSQLXQuizRepository(db)
	documentRepository := repository.NewSQLXDocumentRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)

	// Initialize adapters
	fileStore, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		appLogger.Fatal("Failed to initialize file storage", zap.Error(err))
	}
	extractor := pdftext.NewExtractor()
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)

	var primary, fallback domain.TextGenerator
	if cfg.OpenRouter.PrimaryAPIKey != "" && cfg.OpenRouter.FallbackAPIKey != "" {
		primary = openrouter.NewClient(openrouter.Options{
			BaseURL:  cfg.OpenRouter.BaseURL,
			APIKey:   cfg.OpenRouter.PrimaryAPIKey,
			Model:    cfg.OpenRouter.PrimaryModel,
			Referer:  cfg.OpenRouter.Referer,
			AppTitle: cfg.OpenRouter.AppTitle,
		})
		fallback = openrouter.NewClient(openrouter.Options{
			BaseURL:  cfg.OpenRouter.BaseURL,
			APIKey:   cfg.OpenRouter.FallbackAPIKey,
			Model:    cfg.OpenRouter.FallbackModel,
			Referer:  cfg.OpenRouter.Referer,
			AppTitle: cfg.OpenRouter.AppTitle,
		})
		appLogger.Info("Model providers initialized",
			zap.String("primary", cfg.OpenRouter.PrimaryModel),
			zap.String("fallback", cfg.OpenRouter.FallbackModel))
	} else {
		appLogger.Warn("Model API keys are not configured; quiz generation will fail until they are set")
	}
	invoker := service.NewModelInvoker(primary, fallback)

	// Initialize services
	quizService := service.NewQuizService(quizRepository, documentRepository, extractor, invoker)
	documentService := service.NewDocumentService(documentRepository, fileStore)
	authService := service.NewAuthService(userRepository, quizRepository, cfg.JWT)
	verificationService := service.NewVerificationService(cacheAdapter, smtpMailer)
	quotaService := service.NewGuestQuotaService(cacheAdapter, cfg.Quota.GuestQuizLimit, cfg.Quota.GuestQuizWindow)

	validator := validation.NewValidator()

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService, quotaService, validator)
	documentHandler := handler.NewDocumentHandler(documentService, validator)
	authHandler := handler.NewAuthHandler(authService, validator)
	verificationHandler := handler.NewVerificationHandler(verificationService, validator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    domain.MaxPDFSizeBytes,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", middleware.Protected(authService), authHandler.Me)

	// Verification routes (rate limited per IP)
	verificationGroup := apiGroup.Group("/verification", middleware.VerificationRateLimiter())
	verificationGroup.Post("/send-code", verificationHandler.SendCode)
	verificationGroup.Post("/verify-code", verificationHandler.VerifyCode)

	// Document routes (all protected)
	documentGroup := apiGroup.Group("/documents", middleware.Protected(authService))
	documentGroup.Post("/", documentHandler.UploadDocument)
	documentGroup.Post("/text", documentHandler.CreateTextDocument)
	documentGroup.Get("/", documentHandler.ListDocuments)
	documentGroup.Get("/:id", documentHandler.GetDocument)
	documentGroup.Delete("/:id", documentHandler.DeleteDocument)

	// Quiz routes; generation is open to guests within their quota
	apiGroup.Post("/quizzes", middleware.OptionalAuth(authService), quizHandler.GenerateQuiz)
	apiGroup.Get("/quizzes", middleware.Protected(authService), quizHandler.ListQuizzes)
	apiGroup.Get("/quizzes/:id", middleware.Protected(authService), quizHandler.GetQuiz)
	apiGroup.Put("/quizzes/:id", middleware.Protected(authService), quizHandler.UpdateQuiz)
	apiGroup.Delete("/quizzes/:id", middleware.Protected(authService), quizHandler.DeleteQuiz)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
