package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Animesh0711/DailyEase/internal/api/rest"
	"github.com/Animesh0711/DailyEase/internal/config"
	"github.com/Animesh0711/DailyEase/internal/integration/razorpay"
	"github.com/Animesh0711/DailyEase/internal/integration/stripe"
	"github.com/Animesh0711/DailyEase/internal/kafka"
	"github.com/Animesh0711/DailyEase/internal/metrics"
	"github.com/Animesh0711/DailyEase/internal/repository"
	"github.com/Animesh0711/DailyEase/internal/repository/postgres"
	"github.com/Animesh0711/DailyEase/internal/service"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

func main() {
	log := initLogger()

	log.Infow("Delivery service starting up...")

	// Загружаем конфигурацию
	cfg, err := config.LoadConfig("config.yml")
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}

	// Проверка наличия секрета JWT
	if cfg.Auth.JWTSecret == "" {
		log.Warnw("JWT Secret is not set!")
	}
	// Проверка наличия ключей провайдеров
	if cfg.Razorpay.KeySecret == "" {
		log.Warnw("Razorpay key secret is not set, callback verification will be rejected!")
	}
	if cfg.Stripe.APIKey == "" {
		log.Warnw("Stripe API Key is not set!")
	}

	// Устанавливаем режим Gin в зависимости от окружения
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключаемся к базе данных
	dbPool, err := postgres.NewConnection(ctx, cfg.Database.DSN, postgres.PoolSettings{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	}, log)
	if err != nil {
		log.Fatalw("Failed to connect to database", "error", err)
	}
	defer dbPool.Close()
	log.Infow("Database connection established")

	// Инициализируем репозитории
	var catalogRepo repository.CatalogRepository = postgres.NewPostgresCatalogRepository(dbPool, log)
	subscriptionRepo := postgres.NewPostgresSubscriptionRepository(dbPool, log)
	deliveryRepo := postgres.NewPostgresDeliveryRepository(dbPool, log)
	paymentRepo := postgres.NewPostgresPaymentRepository(dbPool, log)
	userRepo := postgres.NewPostgresUserRepository(dbPool, log)

	// Инициализируем Redis кеш каталога
	redisCache, err := repository.NewRedisCacheRepository(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
	if err != nil {
		// Не фатально, но предупреждаем
		log.Warnw("Failed to initialize Redis cache, continuing without caching", "error", err)
	} else {
		log.Infow("Redis cache initialized successfully")
		catalogRepo = repository.NewCachedCatalogRepository(catalogRepo, redisCache, log)
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Errorw("Error closing Redis connection", "error", err)
			}
		}()
	}

	// Инициализируем Kafka продюсер
	var producer kafka.EventProducer
	producer, err = kafka.NewEventProducer(cfg.Kafka.Brokers, log)
	if err != nil {
		log.Errorw("Failed to initialize Kafka producer, continuing without event publishing", "error", err)
		producer = kafka.NoOpProducer{}
	} else {
		log.Infow("Kafka producer initialized")
		defer func() {
			if err := producer.Close(); err != nil {
				log.Errorw("Error closing Kafka producer", "error", err)
			}
		}()
	}

	// Инициализация Prometheus
	promRegistry := prometheus.NewRegistry()
	paymentMetrics := metrics.NewPaymentMetrics(promRegistry, log)
	subscriptionMetrics := metrics.NewSubscriptionMetrics(promRegistry, log)

	// Инициализируем клиентов платежных провайдеров
	razorpayClient := razorpay.NewClient(razorpay.Config{
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
	}, log)
	stripeClient := stripe.NewClient(stripe.Config{
		APIKey: cfg.Stripe.APIKey,
	}, log)

	// Инициализируем service layer
	paymentService := service.NewPaymentService(paymentRepo, razorpayClient, stripeClient, cfg.Razorpay.KeySecret, producer, paymentMetrics, log)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, deliveryRepo, catalogRepo, paymentService, producer, subscriptionMetrics, log)
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, log)
	catalogService := service.NewCatalogService(catalogRepo, log)

	// Настройка маршрутизатора
	router := rest.SetupRouter(rest.Services{
		Auth:          authService,
		Catalog:       catalogService,
		Subscriptions: subscriptionService,
		Payments:      paymentService,
	}, cfg.Auth.JWTSecret, promRegistry, log)

	// Создание и запуск HTTP сервера
	server := rest.NewServer(router, cfg.App.Port, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infow("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// initLogger инициализирует новый логгер
func initLogger() *logger.Logger {
	logLevel := logger.INFO
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = logger.DEBUG
	}
	return logger.New(logLevel)
}
