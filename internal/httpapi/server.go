package httpapi

import (
	"catalog/app/item"
	"catalog/app/status"
	"catalog/internal/middleware"
	"catalog/pkg/config"
	"catalog/pkg/events"
	"catalog/pkg/metrics"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Config     *config.AppConfig
	Repository item.Repository
	// Publisher may be nil, in which case no item events are emitted.
	Publisher events.Publisher
	// Registry may be nil, in which case no metrics are recorded or exposed.
	Registry *prometheus.Registry
}

func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               deps.Config.ServiceName,
		IdleTimeout:           5 * time.Second,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		Concurrency:           256 * 1024,
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          writeError,
	})

	var httpMetrics *metrics.HTTPMetrics
	if deps.Registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(deps.Registry)
	}

	app.Use(recover.New())
	app.Use(middleware.NewRequestContextMiddleware())
	app.Use(middleware.NewAccessLogMiddleware(httpMetrics))

	infoHandler := status.NewInfoHandler(deps.Config.ServiceName, deps.Config.AppVersion)
	healthHandler := status.NewHealthHandler(deps.Config.ServiceName)

	app.Get("/", handle[status.InfoRequest, status.InfoResponse](infoHandler))
	app.Get("/health", handle[status.HealthRequest, status.HealthResponse](healthHandler))

	if deps.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	createItemHandler := item.NewCreateItemHandler(deps.Repository, deps.Publisher)
	getItemsHandler := item.NewGetItemsHandler(deps.Repository)
	getItemHandler := item.NewGetItemHandler(deps.Repository)
	updateItemHandler := item.NewUpdateItemHandler(deps.Repository, deps.Publisher)
	deleteItemHandler := item.NewDeleteItemHandler(deps.Repository, deps.Publisher)
	searchItemsHandler := item.NewSearchItemsHandler(deps.Repository)

	items := app.Group("/items")
	items.Get("", handle[item.GetItemsRequest, item.GetItemsResponse](getItemsHandler))
	items.Post("", handle[item.CreateItemRequest, item.CreateItemResponse](createItemHandler))
	// Registered before /:id so "search" is never parsed as an id.
	items.Get("/search/:name", handle[item.SearchItemsRequest, item.SearchItemsResponse](searchItemsHandler))
	items.Get("/:id", handle[item.GetItemRequest, item.GetItemResponse](getItemHandler))
	items.Put("/:id", handle[item.UpdateItemRequest, item.UpdateItemResponse](updateItemHandler))
	items.Delete("/:id", handle[item.DeleteItemRequest, item.DeleteItemResponse](deleteItemHandler))

	return app
}
