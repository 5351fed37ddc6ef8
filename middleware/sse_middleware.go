package middleware

import "github.com/gin-gonic/gin"

// SSEMiddleware sets the headers every event stream response needs. The
// stream itself is opened by the handler.
func SSEMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-cache, no-transform")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.Header().Set("X-Accel-Buffering", "no")
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

		c.Next()
	}
}
