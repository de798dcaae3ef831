package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/pkg/logger"
)

// LocalRequestID key del request id en c.Locals.
const LocalRequestID = "request_id"

// HeaderRequestID header de correlación.
const HeaderRequestID = "X-Request-ID"

// RequestID reutiliza el X-Request-ID entrante o genera uno nuevo y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el request id del contexto.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalRequestID).(string)
	return id
}

// RequestLogger registra una línea por petición con método, ruta, status y latencia.
// Deja en el UserContext un logger con request_id para los casos de uso.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqLog := log.WithStr("request_id", GetRequestID(c))
		c.SetUserContext(reqLog.Into(c.UserContext()))
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		httpLog := reqLog.Named("http")
		ev := httpLog.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = httpLog.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = httpLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int64("user_id", GetUserID(c)).
			Msg("http")
		return err
	}
}
