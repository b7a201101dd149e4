package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every processed request
func RequestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let error handler commit response so status is known
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := logrus.Fields{
				"method":    req.Method,
				"uri":       req.URL.Path,
				"status":    res.Status,
				"latency":   time.Since(start).String(),
				"remote_ip": c.RealIP(),
			}

			if req.URL.RawQuery != "" {
				fields["query"] = req.URL.RawQuery
			}

			logger.WithFields(fields).Info("request processed")
			return nil
		}
	}
}
