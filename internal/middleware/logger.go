package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"adminconsole/internal/repository"
)

const RequestIDKey = "requestID"

// RequestLogger assigns a request id, propagates it to remote api calls and logs the
// finished request
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(repository.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(repository.RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(repository.WithRequestID(c.Request.Context(), requestID))

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start),
			"request_id": requestID,
		})
		if op := Operator(c); op != "" {
			entry = entry.WithField("operator", op)
		}
		switch {
		case len(c.Errors) > 0:
			entry.WithError(c.Errors.Last()).Warn("request failed")
		case c.Writer.Status() >= 500:
			entry.Error("request completed")
		default:
			entry.Info("request completed")
		}
	}
}
