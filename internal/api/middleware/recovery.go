package middleware

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/questionsdb/pkg/logger"
	"github.com/d60-Lab/questionsdb/pkg/response"
)

// Recovery 捕获 panic 并上报 sentry（未配置 DSN 时 sentry 为空操作）
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetRequest(c.Request)
			hub.Scope().SetTag("request_id", c.GetString(ctxRequestID))
			hub.RecoverWithContext(c.Request.Context(), rec)
			hub.Flush(2 * time.Second)

			logger.Error("panic recovered",
				zap.Any("panic", rec),
				zap.String("request_id", c.GetString(ctxRequestID)),
				zap.String("path", c.Request.URL.Path),
				zap.Stack("stack"),
			)
			response.InternalError(c, fmt.Errorf("panic: %v", rec))
		}()
		c.Next()
	}
}

// ReportErrors sends 5xx handler errors to sentry.
func ReportErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Status() < 500 || len(c.Errors) == 0 {
			return
		}
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request)
		hub.Scope().SetTag("route", c.FullPath())
		for _, e := range c.Errors {
			hub.CaptureException(e.Err)
		}
	}
}
