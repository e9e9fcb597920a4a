package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 是携带请求ID的响应头
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware 为每个请求分配一个唯一ID并写入响应头。
// 客户端已携带该头时沿用客户端的值，便于跨端关联日志。
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
