package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the correlation id in both directions.
	RequestIDHeader     = "X-Request-ID"
	requestIDContextKey = "requestID"
	maxInboundRequestID = 128
)

// AssignRequestID reuses an inbound X-Request-ID or generates a new one.
func AssignRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxInboundRequestID {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the id assigned by AssignRequestID, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}
