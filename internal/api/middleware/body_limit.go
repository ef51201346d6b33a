package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shift-checkin/pkg/response"
)

// BodyLimit 请求体大小限制中间件
// maxBytes <= 0 表示不限制；花名册导入的 Excel 也受此限制
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
