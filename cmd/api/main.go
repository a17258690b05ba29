package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	"github.com/yourusername/trivia-bank/internal/handler"
	"github.com/yourusername/trivia-bank/internal/middleware"
	pgRepo "github.com/yourusername/trivia-bank/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-bank/internal/repository/redis"
	"github.com/yourusername/trivia-bank/internal/service"
	"github.com/yourusername/trivia-bank/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Подключение к Redis опционально: без него API работает,
	// но без кеша категорий и без rate limiting
	var cacheRepo repository.CacheRepository
	var rateLimiter *middleware.RateLimiter

	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable: %v. Continuing without cache and rate limiting.", err)
	} else {
		log.Println("Successfully connected to Redis")

		repo, err := redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v. Continuing without cache.", err)
		} else {
			cacheRepo = repo
		}
		rateLimiter = middleware.NewRateLimiter(redisClient)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	categoriesTTL := time.Duration(cfg.Redis.CategoriesTTLSec) * time.Second
	questionService := service.NewQuestionService(questionRepo, categoryRepo, cfg.Pagination)
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, categoriesTTL)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService, categoryService)
	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)
	quizHandler := handler.NewQuizHandler(quizService)
	exportHandler := handler.NewExportHandler(questionService, categoryService)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production (GIN_MODE=release): не доверяем прокси (защита от IP spoofing)
	// В development: доверяем localhost
	if gin.Mode() == gin.ReleaseMode {
		// Если используете load balancer, замените nil на []string{"IP_БАЛАНСИРОВЩИКА"}
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Сквозной идентификатор запроса
	router.Use(middleware.RequestID())

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Настраиваем маршруты API
	{
		// Категории
		categories := router.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)

			categoryWithID := categories.Group("/:id")
			categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
			{
				categoryWithID.GET("/questions", categoryHandler.ListQuestionsByCategory)
			}
		}

		// Вопросы
		questions := router.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.GET("/export", exportHandler.ExportQuestions)
			questions.POST("/search", questionHandler.SearchQuestions)

			// Мутирующие маршруты под rate limiting
			mutations := questions.Group("")
			if rateLimiter != nil {
				mutations.Use(rateLimiter.Limit(middleware.DefaultMutationRateLimitConfig()))
			}
			{
				mutations.POST("", questionHandler.CreateQuestion)

				questionWithID := mutations.Group("/:id")
				questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
				{
					questionWithID.DELETE("", questionHandler.DeleteQuestion)
				}
			}
		}

		// Игровой раунд
		quizzes := router.Group("/quizzes")
		if rateLimiter != nil {
			quizzes.Use(rateLimiter.LimitByIP(middleware.QuizRateLimitConfig()))
		}
		{
			quizzes.POST("", quizHandler.NextQuestion)
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}

	log.Println("Server exited properly")
}
