package main

import (
	"catalog/app/item"
	"catalog/infra/grpc"
	"catalog/infra/rabbitmq"
	"catalog/internal/httpapi"
	"catalog/pkg/config"
	"catalog/pkg/events"
	"catalog/pkg/logger"
	"catalog/pkg/metrics"
	"catalog/pkg/tlscert"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()

	zapLogger, _ := logger.Init(appConfig.LogLevel, appConfig.LogDevelopment)
	defer zapLogger.Sync()

	zap.L().Info("app starting...")
	zap.L().Info("app config", zap.Any("appConfig", appConfig))

	store := item.NewStore()

	var registry *prometheus.Registry
	if appConfig.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics.RegisterItemsGauge(registry, store.Count)
	}

	publisher := newPublisher(appConfig)
	if publisher != nil {
		defer publisher.Close()
	}

	app := httpapi.NewApp(httpapi.Dependencies{
		Config:     appConfig,
		Repository: store,
		Publisher:  publisher,
		Registry:   registry,
	})

	var grpcServer *grpc.Server
	if appConfig.GRPCEnabled {
		var err error
		grpcServer, err = grpc.NewServer(appConfig.GRPCPort, appConfig.ServiceName)
		if err != nil {
			zap.L().Fatal("Failed to create gRPC health server", zap.Error(err))
		}
		go func() {
			if err := grpcServer.Start(); err != nil {
				zap.L().Error("gRPC health server stopped", zap.Error(err))
			}
		}()
	}

	go func() {
		if err := listen(app, appConfig); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	if grpcServer != nil {
		grpcServer.SetServing(true)
	}
	zap.L().Info("Server started", zap.String("address", appConfig.Address()), zap.Bool("tls", appConfig.TLSEnabled))

	gracefulShutdown(app, grpcServer)
}

// newPublisher returns nil when RABBITMQ_URL is unset or the broker is
// unreachable; item events are then skipped.
func newPublisher(appConfig *config.AppConfig) events.Publisher {
	if appConfig.RabbitMQURL == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publisher, err := rabbitmq.NewPublisher(ctx, appConfig.RabbitMQURL, appConfig.ServiceName)
	if err != nil {
		zap.L().Error("Item events disabled", zap.Error(err))
		return nil
	}
	return publisher
}

func listen(app *fiber.App, appConfig *config.AppConfig) error {
	if !appConfig.TLSEnabled {
		return app.Listen(appConfig.Address())
	}

	if appConfig.TLSSelfSigned {
		generated, err := tlscert.EnsureSelfSigned(tlscert.Options{
			CertFile: appConfig.TLSCertFile,
			KeyFile:  appConfig.TLSKeyFile,
			Hosts:    appConfig.Hosts(),
		})
		if err != nil {
			return err
		}
		if generated {
			zap.L().Warn("Generated self-signed certificate, do not use it in production",
				zap.String("cert", appConfig.TLSCertFile),
				zap.String("key", appConfig.TLSKeyFile),
				zap.Strings("hosts", appConfig.Hosts()),
			)
		}
	}

	return app.ListenTLS(appConfig.Address(), appConfig.TLSCertFile, appConfig.TLSKeyFile)
}

func gracefulShutdown(app *fiber.App, grpcServer *grpc.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	if grpcServer != nil {
		grpcServer.SetServing(false)
	}

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	zap.L().Info("Server gracefully stopped")
}
