package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"travelin/internal/pkg/config"
	"travelin/internal/pkg/constants"
	"travelin/internal/pkg/logger"
	"travelin/internal/pkg/models"
	"travelin/internal/pkg/nsq"
)

func main() {
	appName := "travelin-notifier"
	configPath := "config/notifier.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithField("app", appName).
		WithField("environment", configs.App.Environment).
		Info("Starting application")

	consumer, err := nsq.NewConsumer(
		constants.TopicOrderStatusChanged,
		constants.ChannelNotifier,
		configs.NSQ.Address,
		appLogger.Logger,
		handleOrderStatusChanged(appLogger.Logger),
	)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to create NSQ consumer")
	}
	defer consumer.Stop()

	if configs.NSQ.LookupdAddress != "" {
		if err := consumer.ConnectToLookupd([]string{configs.NSQ.LookupdAddress}); err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to NSQ lookupd")
		}
	}

	appLogger.WithFields(logrus.Fields{
		"topic":   constants.TopicOrderStatusChanged,
		"channel": constants.ChannelNotifier,
	}).Info("Listening for order status events")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	appLogger.WithField("signal", sig.String()).Info("Received shutdown signal")
	appLogger.Info("Notifier exiting gracefully")
}

// handleOrderStatusChanged records each lifecycle change so a delivery
// channel (email, push) can be attached later without touching the API.
func handleOrderStatusChanged(log *logrus.Logger) nsq.MessageHandler {
	return func(message []byte) error {
		var event models.OrderStatusEvent
		if err := json.Unmarshal(message, &event); err != nil {
			log.WithError(err).Error("Failed to decode order status event")
			// Malformed payloads will never succeed, drop them
			return nil
		}

		log.WithFields(logrus.Fields{
			"order_id":     event.OrderID,
			"user_id":      event.UserID,
			"kind":         event.Kind,
			"old_status":   event.OldStatus,
			"new_status":   event.NewStatus,
			"total_amount": event.TotalAmount,
			"currency":     event.Currency,
		}).Info("Order status notification")

		return nil
	}
}
