package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"travelin/internal/pkg/config"
	"travelin/internal/pkg/database"
	"travelin/internal/pkg/logger"
	"travelin/internal/pkg/middleware"
	"travelin/internal/pkg/nsq"
	"travelin/internal/pkg/server"
	adminhandler "travelin/services/admin/handler"
	adminrepository "travelin/services/admin/repository"
	adminusecase "travelin/services/admin/usecase"
	ordersgateway "travelin/services/orders/gateway"
	ordershandler "travelin/services/orders/handler"
	ordersrepository "travelin/services/orders/repository"
	ordersusecase "travelin/services/orders/usecase"
	"travelin/services/pricing"
	pricinghandler "travelin/services/pricing/handler"
	pricingrepository "travelin/services/pricing/repository"
	pricingusecase "travelin/services/pricing/usecase"
	usershandler "travelin/services/users/handler"
	usersrepository "travelin/services/users/repository"
	usersusecase "travelin/services/users/usecase"
)

func main() {
	appName := "travelin-api"
	configPath := "config/api.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithField("app", appName).
		WithField("environment", configs.App.Environment).
		Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsq.NewProducer(configs.NSQ.Address, appLogger.Logger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NSQ")
	}
	defer producer.Stop()

	// Pricing service
	rateCards, err := pricing.NewRateCardSet(pricing.DefaultRateCards())
	if err != nil {
		appLogger.WithError(err).Fatal("Invalid rate card configuration")
	}
	promoRepo := pricingrepository.NewPromoRepository(configs, postgresClient.GetDB(), redisClient)
	estimateCache := pricingrepository.NewEstimateCache(configs, redisClient)
	pricingUC := pricingusecase.NewPricingUC(configs, rateCards, promoRepo, estimateCache)
	pricingHandler := pricinghandler.NewPricingHandler(pricingUC)

	// Orders service
	orderRepo := ordersrepository.NewOrderRepository(configs, postgresClient.GetDB())
	orderGW := ordersgateway.NewOrderGW(producer)
	orderUC := ordersusecase.NewOrderUC(configs, orderRepo, orderGW, pricingUC, appLogger.Logger)
	orderHandler := ordershandler.NewOrderHandler(orderUC)

	// Users service
	userRepo := usersrepository.NewUserRepo(configs, postgresClient)
	userUC := usersusecase.NewUserUC(configs, userRepo, appLogger.Logger)
	userHandler := usershandler.NewUserHandler(userUC)

	// Admin service
	statsRepo := adminrepository.NewStatsRepo(configs, postgresClient)
	adminUC := adminusecase.NewAdminUC(configs, statsRepo, pricingUC, redisClient, appLogger.Logger)
	adminHandler := adminhandler.NewAdminHandler(adminUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Panic recovery should be first
	e.Use(middleware.PanicRecoveryMiddleware(appLogger.Logger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": appName,
			"version": configs.App.Version,
		})
	})

	// Register service routes
	pricingHandler.RegisterRoutes(e, configs.JWT)
	orderHandler.RegisterRoutes(e, configs.JWT)
	userHandler.RegisterRoutes(e, configs.JWT)
	adminHandler.RegisterRoutes(e, configs.JWT)

	srv := server.NewGracefulServer(e, appLogger.Logger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Error("Server exited with error")
	}

	appLogger.Info("Server exiting gracefully")
}
