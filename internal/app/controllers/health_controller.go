package controllers

import (
	"github.com/gin-gonic/gin"

	"directory-http-service/internal/domain/services/container"
	"directory-http-service/internal/error/response"
)

// HealthController 处理健康检查请求
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建一个新的健康检查控制器
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		default:
			controller.Ping()
		}
	}
}

// 1. Ping 健康检查端点，不需要认证
// @Summary 健康检查
// @Description 返回固定的存活确认，不校验API密钥
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}
