package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps request bodies. Contract submissions carry a base64
// PDF plus two signature images, so the ceiling is generous.
const MaxBodyBytes = 50 << 20 // 50 MB

// BodyLimit rejects request bodies larger than MaxBodyBytes. Reads past the
// cap fail inside the handler's body read, which reports the request as
// malformed.
func BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
		c.Next()
	}
}
