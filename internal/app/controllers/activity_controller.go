package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"directory-http-service/internal/domain/services"
	"directory-http-service/internal/domain/services/container"
	"directory-http-service/internal/error/code"
	"directory-http-service/internal/error/response"
)

// InterfaceActivityController 定义活动控制器接口
type InterfaceActivityController interface {
	GetActivities()
}

// ActivityController 处理活动分类相关的请求
type ActivityController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewActivityController 创建一个新的活动控制器
func NewActivityController(ctx *gin.Context, container *container.ServiceContainer) *ActivityController {
	return &ActivityController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleActivityFunc 返回一个处理活动请求的Gin处理函数
func HandleActivityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewActivityController(ctx, container)

		switch method {
		case "getActivities":
			controller.GetActivities()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetActivities 获取活动树
// @Summary 获取活动树
// @Description 以树形结构返回全部业务活动，最大嵌套深度为3级
// @Tags Activity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.ActivityTree
// @Failure 500 {object} response.Response
// @Router /activities/ [get]
func (c *ActivityController) GetActivities() {
	activityService := c.Container.GetService("activity").(services.InterfaceActivityService)
	tree, err := activityService.GetActivityTree()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.Ctx.JSON(http.StatusOK, tree)
}
