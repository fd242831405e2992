package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultJSONBodyLimit is the largest JSON body accepted by the API
const DefaultJSONBodyLimit = int64(100 << 10)

// SizeLimit function is a middleware that caps the request body at maxBodyBytes.
// Reading past the limit returns http.MaxBytesError, which handlers
// answer with 413 request entity too large.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
