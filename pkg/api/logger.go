package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger writes one log line per request, with the level following the response status.
// Prometheus scrapes are only logged at debug level.
func NewLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		handlerErr := c.Next()
		if handlerErr != nil {
			// let fiber's error handler set the status before it is logged
			if err := c.App().ErrorHandler(c, handlerErr); err != nil {
				c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		code := c.Response().StatusCode()

		ipAddress := c.IP()
		if cloudflareConnectingIP := c.Get("CF-Connecting-IP"); cloudflareConnectingIP != "" {
			ipAddress = cloudflareConnectingIP
		}

		var event *zerolog.Event
		switch {
		case code >= fiber.StatusInternalServerError:
			event = log.Error()
		case code >= fiber.StatusBadRequest:
			event = log.Warn()
		case c.Path() == "/metrics":
			event = log.Debug()
		default:
			event = log.Info()
		}

		if handlerErr != nil {
			event = event.Err(handlerErr)
		}

		event.
			Int("status", code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("query", string(c.Request().URI().QueryString())).
			Str("ip", ipAddress).
			Dur("latency", time.Since(startTime)).
			Int("bytes", len(c.Response().Body())).
			Str("user-agent", c.Get(fiber.HeaderUserAgent)).
			Msg("HTTP Request")

		return nil
	}
}
