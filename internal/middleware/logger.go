package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestLogger trace chaque requête avec un request_id unique.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Set("request_id", requestID)

		c.Next()

		latency := time.Since(start).Milliseconds()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("endpoint", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int64("latency", latency).
			Msg("Request processed")
	}
}
