package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Animesh0711/DailyEase/internal/api/rest/handlers"
	"github.com/Animesh0711/DailyEase/internal/api/rest/middleware"
	"github.com/Animesh0711/DailyEase/internal/service"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

// Services сервисы, которые обслуживает HTTP API
type Services struct {
	Auth          service.AuthService
	Catalog       service.CatalogService
	Subscriptions service.SubscriptionService
	Payments      service.PaymentService
}

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(svcs Services, jwtSecret string, registry *prometheus.Registry, log *logger.Logger) *gin.Engine {
	r := gin.New()

	// Подключение middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(gin.Recovery())

	// Endpoint для проверки работоспособности сервиса
	r.GET("/health", handlers.HealthCheck)

	// Prometheus метрики
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	jwtMiddleware := middleware.NewJWTMiddleware(log, &middleware.DefaultTokenValidator{
		Secret: []byte(jwtSecret),
	})

	// Инициализация обработчиков
	authHandler := handlers.NewAuthHandler(svcs.Auth, log)
	catalogHandler := handlers.NewCatalogHandler(svcs.Catalog, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(svcs.Subscriptions, log)
	paymentHandler := handlers.NewPaymentHandler(svcs.Payments, log)

	v1 := r.Group("/api/v1")
	{
		// Регистрация и вход
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/user/:id", jwtMiddleware.RequireAuth(), authHandler.GetUser)
		}

		// Каталог газет
		newspapers := v1.Group("/newspapers")
		{
			newspapers.GET("", catalogHandler.GetNewspapers)
			newspapers.GET("/:id", catalogHandler.GetNewspaper)
		}

		// Каталог молока
		milk := v1.Group("/milk")
		{
			milk.GET("", catalogHandler.GetMilkPackages)
			milk.GET("/:id", catalogHandler.GetMilkPackage)
		}

		// Администрирование каталога
		admin := v1.Group("/admin", jwtMiddleware.RequireAdmin())
		{
			admin.POST("/newspapers", catalogHandler.CreateNewspaper)
			admin.PUT("/newspapers/:id", catalogHandler.UpdateNewspaper)
			admin.POST("/milk", catalogHandler.CreateMilkPackage)
			admin.PUT("/milk/:id", catalogHandler.UpdateMilkPackage)
		}

		// Подписки и доставки
		subscriptions := v1.Group("/subscriptions", jwtMiddleware.RequireAuth())
		{
			subscriptions.POST("", subscriptionHandler.CreateSubscription)
			subscriptions.GET("/user/:userId", subscriptionHandler.GetUserSubscriptions)
			subscriptions.POST("/:id/pause", subscriptionHandler.PauseSubscription)
			subscriptions.POST("/:id/resume", subscriptionHandler.ResumeSubscription)
			subscriptions.POST("/:id/toggle-delivery", subscriptionHandler.ToggleDelivery)
			subscriptions.GET("/calendar/:userId", subscriptionHandler.GetDeliveryCalendar)
		}

		// Платежи
		payments := v1.Group("/payments", jwtMiddleware.RequireAuth())
		{
			payments.POST("/:id/confirm", paymentHandler.ConfirmPayment)
			payments.POST("/verify", paymentHandler.VerifyPayment)
			payments.GET("/history/:userId", paymentHandler.GetPaymentHistory)
		}
	}

	return r
}
