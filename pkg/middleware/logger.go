package middleware

import (
	"stock-genius/pkg/common"
	"stock-genius/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRequestIDMiddleware assigns every request an id, reusing the one sent
// by the client if present, and stores a child logger carrying it in the
// request context.
func NewRequestIDMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: common.HEADER_REQUEST_ID,
		RequestIDHandler: func(c echo.Context, requestID string) {
			req := c.Request()
			ctx := logger.NewContext(req.Context(), log.With(logger.StringField("request_id", requestID)))
			c.SetRequest(req.WithContext(ctx))
		},
	})
}

// NewRequestLoggerMiddleware writes one access log line per request.
func NewRequestLoggerMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.DurationField("latency", v.Latency),
				logger.StringField("remote_ip", v.RemoteIP),
				logger.StringField("request_id", v.RequestID),
			}
			if v.Error != nil {
				log.Error("Request failed", append(fields, logger.ErrorField(v.Error))...)
				return nil
			}
			log.Info("Request handled", fields...)
			return nil
		},
	})
}
