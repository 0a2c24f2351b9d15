package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// httpObserver recibe una observación por request. Lo implementa *metrics.Recorder.
type httpObserver interface {
	ObserveHTTP(route, method, status string, seconds float64)
}

// RequestLogger registra cada request con zerolog y, si hay observer, alimenta métricas.
func RequestLogger(logger zerolog.Logger, observer httpObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path

		ev := logger.Info()
		if status >= fiber.StatusInternalServerError {
			ev = logger.Error().Err(err)
		} else if status >= fiber.StatusBadRequest {
			ev = logger.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Str("user_id", GetUserID(c)).
			Msg("request")

		if observer != nil {
			observer.ObserveHTTP(route, c.Method(), strconv.Itoa(status), elapsed.Seconds())
		}
		return err
	}
}
