package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Detencio/SuperSetBI/pkg/logger"
)

// RequestLogger middleware de logging estructurado por petición.
// Registra método, ruta, status y latencia; los errores de handler se
// propagan al ErrorHandler de Fiber después de loguearse.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		event := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("http request")

		return err
	}
}
