package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// AssignRequestID reuses a well-formed incoming X-Request-ID or mints a new
// one, and echoes it on the response.
func AssignRequestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)

	c.Next()
}

func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
