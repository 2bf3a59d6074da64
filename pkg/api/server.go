package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/travigo/bridgetimes/pkg/api/routes"
	"github.com/travigo/bridgetimes/pkg/metrics"
)

func NewApp(board routes.BoardSource, collector *metrics.Collector) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	webApp.Get("/", routes.BoardPage(board))
	webApp.Get("/version", routes.APIVersion)

	if collector != nil {
		webApp.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))
	}

	routes.TrainDataRouter(webApp.Group("/api"), board)

	return webApp
}

func SetupServer(listen string, board routes.BoardSource, collector *metrics.Collector) error {
	return NewApp(board, collector).Listen(listen)
}
