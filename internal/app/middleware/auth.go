package middleware

import (
	"github.com/gin-gonic/gin"

	"directory-http-service/internal/error/response"
	"directory-http-service/internal/infrastructure/config"
)

// APIKeyHeader 认证请求头名称
const APIKeyHeader = "X-API-Key"

// APIKeyAuth 校验共享密钥请求头。
// 请求头缺失返回401，密钥不正确返回403。
func APIKeyAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(APIKeyHeader)
		if apiKey == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if apiKey != cfg.APIKey {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
