package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"directory-http-service/internal/domain/services"
	"directory-http-service/internal/domain/services/container"
	"directory-http-service/internal/error/code"
	"directory-http-service/internal/error/response"
	"directory-http-service/pkg/pagination"
)

// InterfaceBuildingController 定义楼宇控制器接口
type InterfaceBuildingController interface {
	GetBuildings()
}

// BuildingController 处理楼宇相关的请求
type BuildingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBuildingController 创建一个新的楼宇控制器
func NewBuildingController(ctx *gin.Context, container *container.ServiceContainer) *BuildingController {
	return &BuildingController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleBuildingFunc 返回一个处理楼宇请求的Gin处理函数
func HandleBuildingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBuildingController(ctx, container)

		switch method {
		case "getBuildings":
			controller.GetBuildings()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetBuildings 获取所有楼宇列表
// @Summary 获取所有楼宇
// @Description 返回全部楼宇的分页列表，包含地址与地理坐标
// @Tags Building
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "每页数量，默认20，范围[1,100]"
// @Param offset query int false "偏移量，默认0"
// @Success 200 {object} pagination.Response
// @Failure 400 {object} response.Response
// @Router /buildings/ [get]
func (c *BuildingController) GetBuildings() {
	cfg := c.Container.GetConfig()
	params, err := pagination.ParseParams(c.Ctx, cfg.PageSizeDefault, cfg.PageSizeMax)
	if err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)
	buildings, total, err := buildingService.GetAllBuildings(params.Limit, params.Offset)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	items := make([]BuildingRead, 0, len(buildings))
	for _, b := range buildings {
		items = append(items, BuildingRead{
			ID:        b.ID,
			Address:   b.Address,
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
		})
	}

	c.Ctx.JSON(http.StatusOK, pagination.BuildResponse(c.Ctx, items, total, params.Limit, params.Offset))
}
