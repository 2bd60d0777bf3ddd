package middleware

import (
	"board-guard/backend/global"
	"time"

	"github.com/labstack/echo/v4"
)

func Logging(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		r := c.Request()
		res := c.Response()
		global.Logger.Info().
			Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
			Str("ip", c.RealIP()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("route", c.Path()).
			Int("status", res.Status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return nil
	}
}
