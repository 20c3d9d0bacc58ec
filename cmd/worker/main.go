package main

import (
	"catalog/infra/rabbitmq"
	"catalog/internal/consumers"
	"catalog/pkg/config"
	"catalog/pkg/events"
	"catalog/pkg/logger"
	"context"
	"errors"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()

	zapLogger, _ := logger.Init(appConfig.LogLevel, appConfig.LogDevelopment)
	defer zapLogger.Sync()

	zap.L().Info("Catalog audit worker starting...")

	if appConfig.RabbitMQURL == "" {
		zap.L().Fatal("RABBITMQ_URL is required for the audit worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(ctx, appConfig.RabbitMQURL, rabbitmq.ConsumerConfig{
		Exchange:      events.ItemExchange,
		QueueName:     events.ItemExchange + ".audit.v1",
		RoutingKeys:   []string{events.ItemDomain + ".*." + events.EventVersionV1},
		ServiceName:   appConfig.ServiceName + "-audit",
		PrefetchCount: 10,
	})
	if err != nil {
		zap.L().Fatal("Failed to create item consumer", zap.Error(err))
	}
	defer consumer.Close()

	auditHandler := consumers.NewItemAuditHandler(zap.L().Named("audit"))

	zap.L().Info("Worker started, waiting for item events...", zap.String("exchange", events.ItemExchange))

	if err := consumer.Consume(ctx, auditHandler.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
		zap.L().Error("Item consumer stopped", zap.Error(err))
	}

	zap.L().Info("Worker service stopped gracefully")
}
