package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/clientes-api/pkg/logger"
	"github.com/rs/zerolog"
)

// LocalRequestID clave de c.Locals con el id de la petición.
const LocalRequestID = "request_id"

// RequestLogger asigna un id por petición (o respeta el X-Request-ID
// entrante) y registra método, ruta, status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		var evt *zerolog.Event
		if err != nil {
			evt = log.Error().Err(err)
		} else {
			evt = log.Info()
		}
		evt.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// GetRequestID devuelve el id de la petición (después del middleware).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
