package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"directory-http-service/internal/domain/models"
	"directory-http-service/internal/domain/services"
	"directory-http-service/internal/domain/services/container"
	"directory-http-service/internal/error/code"
	"directory-http-service/internal/error/response"
	"directory-http-service/pkg/pagination"
)

// 半径搜索允许的最大值：地球赤道周长（米）
const maxSearchRadiusMeters = 40075000

// InterfaceOrganizationController 定义组织控制器接口
type InterfaceOrganizationController interface {
	GetOrganization()
	GetOrganizationsByBuilding()
	GetOrganizationsByActivity()
	SearchOrganizationsByActivity()
	SearchOrganizationsByName()
	SearchOrganizationsInRadius()
	SearchOrganizationsInRectangle()
}

// OrganizationController 处理组织相关的请求
type OrganizationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOrganizationController 创建一个新的组织控制器
func NewOrganizationController(ctx *gin.Context, container *container.ServiceContainer) *OrganizationController {
	return &OrganizationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleOrganizationFunc 返回一个处理组织请求的Gin处理函数
func HandleOrganizationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOrganizationController(ctx, container)

		switch method {
		case "getOrganization":
			controller.GetOrganization()
		case "getOrganizationsByBuilding":
			controller.GetOrganizationsByBuilding()
		case "getOrganizationsByActivity":
			controller.GetOrganizationsByActivity()
		case "searchOrganizationsByActivity":
			controller.SearchOrganizationsByActivity()
		case "searchOrganizationsByName":
			controller.SearchOrganizationsByName()
		case "searchOrganizationsInRadius":
			controller.SearchOrganizationsInRadius()
		case "searchOrganizationsInRectangle":
			controller.SearchOrganizationsInRectangle()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// OrganizationListItem 组织的列表表示
type OrganizationListItem struct {
	ID         uint   `json:"id" example:"1"`
	Name       string `json:"name" example:"ООО Рога и Копыта"`
	BuildingID uint   `json:"building_id" example:"1"`
}

// PhoneRead 组织电话的响应表示
type PhoneRead struct {
	ID          uint   `json:"id" example:"1"`
	PhoneNumber string `json:"phone_number" example:"2-222-222"`
}

// ActivityRead 活动的平铺响应表示
type ActivityRead struct {
	ID       uint   `json:"id" example:"2"`
	Name     string `json:"name" example:"Мясная продукция"`
	ParentID *uint  `json:"parent_id"`
	Level    int    `json:"level" example:"2"`
}

// BuildingRead 楼宇的响应表示
type BuildingRead struct {
	ID        uint    `json:"id" example:"1"`
	Address   string  `json:"address" example:"г. Москва, ул. Ленина 1, офис 3"`
	Latitude  float64 `json:"latitude" example:"55.7558"`
	Longitude float64 `json:"longitude" example:"37.6173"`
}

// OrganizationDetail 组织的完整表示，包含楼宇、电话与活动
type OrganizationDetail struct {
	ID         uint           `json:"id" example:"1"`
	Name       string         `json:"name" example:"ООО Рога и Копыта"`
	Building   BuildingRead   `json:"building"`
	Phones     []PhoneRead    `json:"phones"`
	Activities []ActivityRead `json:"activities"`
}

// 1. GetOrganization 获取组织详情
// @Summary 获取组织详情
// @Description 根据ID返回组织的完整信息，包含楼宇、电话与活动
// @Tags Organization
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "组织ID"
// @Success 200 {object} OrganizationDetail
// @Failure 404 {object} response.Response
// @Router /organizations/{id} [get]
func (c *OrganizationController) GetOrganization() {
	id, ok := c.parseIDParam()
	if !ok {
		return
	}

	orgService := c.Container.GetService("organization").(services.InterfaceOrganizationService)
	org, err := orgService.GetOrganizationByID(id)
	if err != nil {
		if errors.Is(err, services.ErrOrganizationNotFound) {
			response.Fail(c.Ctx, code.ErrOrganizationNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.Ctx.JSON(http.StatusOK, toOrganizationDetail(org))
}

// 2. GetOrganizationsByBuilding 获取指定楼宇内的组织列表
// @Summary 楼宇内的组织
// @Description 返回指定楼宇内所有组织的分页列表
// @Tags Organization
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "楼宇ID"
// @Param limit query int false "每页数量，默认20，范围[1,100]"
// @Param offset query int false "偏移量，默认0"
// @Success 200 {object} pagination.Response
// @Failure 400 {object} response.Response
// @Router /organizations/by-building/{id} [get]
func (c *OrganizationController) GetOrganizationsByBuilding() {
	id, ok := c.parseIDParam()
	if !ok {
		return
	}
	params, ok := c.parsePagination()
	if !ok {
		return
	}

	orgService := c.Container.GetService("organization").(services.InterfaceOrganizationService)
	orgs, total, err := orgService.GetByBuilding(id, params.Limit, params.Offset)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.respondPage(orgs, total, params)
}

// 3. GetOrganizationsByActivity 按活动获取组织列表（不含子活动）
// @Summary 按活动获取组织
// @Description 返回直接关联指定活动的组织分页列表，不展开子活动
// @Tags Organization
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "活动ID"
// @Param limit query int false "每页数量，默认20，范围[1,100]"
// @Param offset query int false "偏移量，默认0"
// @Success 200 {object} pagination.Response
// @Failure 400 {object} response.Response
// @Router /organizations/by-activity/{id} [get]
func (c *OrganizationController) GetOrganizationsByActivity() {
	id, ok := c.parseIDParam()
	if !ok {
		return
	}
	params, ok := c.parsePagination()
	if !ok {
		return
	}

	orgService := c.Container.GetService("organization").(services.InterfaceOrganizationService)
	orgs, total, err := orgService.GetByActivity(id, params.Limit, params.Offset)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.respondPage(orgs, total, params)
}

// 4. SearchOrganizationsByActivity 按活动及其后代搜索组织
// @Summary 按活动搜索组织（含子活动）
// @Description 按活动搜索组织，展开全部子活动。例如搜索“Еда”会返回关联“Мясная продукция”、“Молочная продукция”等子活动的组织
// @Tags Organization
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "活动ID"
// @Param limit query int false "每页数量，默认20，范围[1,100]"
// @Param offset query int false "偏移量，默认0"
// @Success 200 {object} pagination.Response
// @Failure 400 {object} response.Response
// @Router /organizations/search/activity/{id} [get]
func (c *OrganizationController) SearchOrganizationsByActivity() {
	id, ok := c.parseIDParam()
	if !ok {
		return
	}
	params, ok := c.parsePagination()
	if !ok {
		return
	}

	orgService := c.Container.GetService("organization").(services.InterfaceOrganizationService)
	orgs, total, err := orgService.SearchByActivityTree(id, params.Limit, params.Offset)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.respondPage(orgs, total, params)
}

// 5. SearchOrganizationsByName 按名称搜索组织
// @Summary 按名称搜索组织
// @Description 按名称子串搜索组织，不区分大小写
// @Tags Organization
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param q query string true "搜索关键字，非空"
// @Param limit query int false "每页数量，默认20，范围[1,100]"
// @Param offset query int false "偏移量，默认0"
// @Success 200 {object} pagination.Response
// @Failure 400 {object} response.Response
// @Router /organizations/search/name [get]
func (c *OrganizationController) SearchOrganizationsByName() {
	q := c.Ctx.Query("q")
	if q == "" {
		response.ParamError(c.Ctx, "q 不能为空")
		return
	}
	params, ok := c.parsePagination()
	if !ok {
		return
	}

	orgService := c.Container.GetService("organization").(services.InterfaceOrganizationService)
	orgs, total, err := orgService.SearchByName(q, params.Limit, params.Offset)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.respondPage(orgs, total, params)
}

// 6. SearchOrganizationsInRadius 搜索半径范围内的组织
// @Summary 半径搜索组织
// @Description 返回距离指定点不超过radius米的组织分页列表
// @Tags Organization
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "中心点纬度 [-90, 90]"
// @Param lng query number true "中心点经度 [-180, 180]"
// @Param radius query number true "搜索半径（米），(0, 40075000]"
// @Param limit query int false "每页数量，默认20，范围[1,100]"
// @Param offset query int false "偏移量，默认0"
// @Success 200 {object} pagination.Response
// @Failure 400 {object} response.Response
// @Router /organizations/search/radius [get]
func (c *OrganizationController) SearchOrganizationsInRadius() {
	lat, ok := c.parseFloatQuery("lat")
	if !ok {
		return
	}
	lng, ok := c.parseFloatQuery("lng")
	if !ok {
		return
	}
	radius, ok := c.parseFloatQuery("radius")
	if !ok {
		return
	}

	if lat < -90 || lat > 90 {
		response.ParamError(c.Ctx, "lat 必须在 [-90, 90] 范围内")
		return
	}
	if lng < -180 || lng > 180 {
		response.ParamError(c.Ctx, "lng 必须在 [-180, 180] 范围内")
		return
	}
	if radius <= 0 || radius > maxSearchRadiusMeters {
		response.ParamError(c.Ctx, "radius 必须在 (0, 40075000] 范围内")
		return
	}

	params, ok := c.parsePagination()
	if !ok {
		return
	}

	orgService := c.Container.GetService("organization").(services.InterfaceOrganizationService)
	orgs, total, err := orgService.SearchInRadius(lat, lng, radius, params.Limit, params.Offset)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.respondPage(orgs, total, params)
}

// 7. SearchOrganizationsInRectangle 搜索矩形区域内的组织
// @Summary 矩形区域搜索组织
// @Description 返回坐标落在指定矩形区域内的组织分页列表
// @Tags Organization
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat_min query number true "最小纬度 [-90, 90]"
// @Param lat_max query number true "最大纬度 [-90, 90]"
// @Param lng_min query number true "最小经度 [-180, 180]"
// @Param lng_max query number true "最大经度 [-180, 180]"
// @Param limit query int false "每页数量，默认20，范围[1,100]"
// @Param offset query int false "偏移量，默认0"
// @Success 200 {object} pagination.Response
// @Failure 400 {object} response.Response
// @Router /organizations/search/rectangle [get]
func (c *OrganizationController) SearchOrganizationsInRectangle() {
	latMin, ok := c.parseFloatQuery("lat_min")
	if !ok {
		return
	}
	latMax, ok := c.parseFloatQuery("lat_max")
	if !ok {
		return
	}
	lngMin, ok := c.parseFloatQuery("lng_min")
	if !ok {
		return
	}
	lngMax, ok := c.parseFloatQuery("lng_max")
	if !ok {
		return
	}

	if latMin < -90 || latMin > 90 || latMax < -90 || latMax > 90 {
		response.ParamError(c.Ctx, "lat_min/lat_max 必须在 [-90, 90] 范围内")
		return
	}
	if lngMin < -180 || lngMin > 180 || lngMax < -180 || lngMax > 180 {
		response.ParamError(c.Ctx, "lng_min/lng_max 必须在 [-180, 180] 范围内")
		return
	}
	// 跨字段校验：上下界必须严格有序
	if latMin >= latMax {
		response.ParamError(c.Ctx, "lat_min 必须小于 lat_max")
		return
	}
	if lngMin >= lngMax {
		response.ParamError(c.Ctx, "lng_min 必须小于 lng_max")
		return
	}

	params, ok := c.parsePagination()
	if !ok {
		return
	}

	orgService := c.Container.GetService("organization").(services.InterfaceOrganizationService)
	orgs, total, err := orgService.SearchInRectangle(latMin, latMax, lngMin, lngMax, params.Limit, params.Offset)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.respondPage(orgs, total, params)
}

// parseIDParam 解析路径中的ID参数
func (c *OrganizationController) parseIDParam() (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c.Ctx, "id 必须是正整数")
		return 0, false
	}
	return uint(id), true
}

// parsePagination 解析分页参数，越界直接返回参数错误
func (c *OrganizationController) parsePagination() (pagination.Params, bool) {
	cfg := c.Container.GetConfig()
	params, err := pagination.ParseParams(c.Ctx, cfg.PageSizeDefault, cfg.PageSizeMax)
	if err != nil {
		response.ParamError(c.Ctx, err.Error())
		return pagination.Params{}, false
	}
	return params, true
}

// parseFloatQuery 解析必填的浮点查询参数
func (c *OrganizationController) parseFloatQuery(name string) (float64, bool) {
	valueStr, exists := c.Ctx.GetQuery(name)
	if !exists || valueStr == "" {
		response.ParamError(c.Ctx, name+" 是必填参数")
		return 0, false
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		response.ParamError(c.Ctx, name+" 必须是数字")
		return 0, false
	}

	return value, true
}

// respondPage 输出分页响应
func (c *OrganizationController) respondPage(orgs []models.Organization, total int64, params pagination.Params) {
	items := toOrganizationListItems(orgs)
	c.Ctx.JSON(http.StatusOK, pagination.BuildResponse(c.Ctx, items, total, params.Limit, params.Offset))
}

// toOrganizationListItems 模型转换为列表表示
func toOrganizationListItems(orgs []models.Organization) []OrganizationListItem {
	items := make([]OrganizationListItem, 0, len(orgs))
	for _, org := range orgs {
		items = append(items, OrganizationListItem{
			ID:         org.ID,
			Name:       org.Name,
			BuildingID: org.BuildingID,
		})
	}
	return items
}

// toOrganizationDetail 模型转换为完整表示
func toOrganizationDetail(org *models.Organization) OrganizationDetail {
	phones := make([]PhoneRead, 0, len(org.Phones))
	for _, phone := range org.Phones {
		phones = append(phones, PhoneRead{ID: phone.ID, PhoneNumber: phone.PhoneNumber})
	}

	activities := make([]ActivityRead, 0, len(org.Activities))
	for _, act := range org.Activities {
		activities = append(activities, ActivityRead{
			ID:       act.ID,
			Name:     act.Name,
			ParentID: act.ParentID,
			Level:    act.Level,
		})
	}

	return OrganizationDetail{
		ID:   org.ID,
		Name: org.Name,
		Building: BuildingRead{
			ID:        org.Building.ID,
			Address:   org.Building.Address,
			Latitude:  org.Building.Latitude,
			Longitude: org.Building.Longitude,
		},
		Phones:     phones,
		Activities: activities,
	}
}
