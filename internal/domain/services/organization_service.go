package services

import (
	"errors"

	"gorm.io/gorm"

	"directory-http-service/internal/domain/models"
	"directory-http-service/internal/infrastructure/config"
	"directory-http-service/pkg/geo"
)

// ErrOrganizationNotFound 按ID查询组织时记录不存在。
// 与列表接口的空结果严格区分：列表对不存在的过滤条件合法地返回零条记录。
var ErrOrganizationNotFound = errors.New("组织不存在")

// InterfaceOrganizationService 定义组织服务接口
type InterfaceOrganizationService interface {
	GetOrganizationByID(id uint) (*models.Organization, error)
	GetByBuilding(buildingID uint, limit, offset int) ([]models.Organization, int64, error)
	GetByActivity(activityID uint, limit, offset int) ([]models.Organization, int64, error)
	SearchByActivityTree(activityID uint, limit, offset int) ([]models.Organization, int64, error)
	SearchByName(name string, limit, offset int) ([]models.Organization, int64, error)
	SearchInRadius(lat, lng, radiusMeters float64, limit, offset int) ([]models.Organization, int64, error)
	SearchInRectangle(latMin, latMax, lngMin, lngMax float64, limit, offset int) ([]models.Organization, int64, error)
}

// OrganizationService 提供组织相关的服务
type OrganizationService struct {
	DB              *gorm.DB
	Config          *config.Config
	ActivityService InterfaceActivityService
}

// NewOrganizationService 创建一个新的组织服务
func NewOrganizationService(db *gorm.DB, cfg *config.Config, activityService InterfaceActivityService) InterfaceOrganizationService {
	return &OrganizationService{
		DB:              db,
		Config:          cfg,
		ActivityService: activityService,
	}
}

// 1. GetOrganizationByID 根据ID获取组织，预加载楼宇、电话与活动
func (s *OrganizationService) GetOrganizationByID(id uint) (*models.Organization, error) {
	var org models.Organization
	err := s.DB.
		Preload("Building").
		Preload("Phones").
		Preload("Activities").
		First(&org, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// 2. GetByBuilding 获取指定楼宇内的组织列表
func (s *OrganizationService) GetByBuilding(buildingID uint, limit, offset int) ([]models.Organization, int64, error) {
	newQuery := func() *gorm.DB {
		return s.DB.Model(&models.Organization{}).Where("building_id = ?", buildingID)
	}
	return paginateOrganizations(newQuery, limit, offset)
}

// 3. GetByActivity 获取直接关联指定活动的组织列表（不含子活动）
func (s *OrganizationService) GetByActivity(activityID uint, limit, offset int) ([]models.Organization, int64, error) {
	newQuery := func() *gorm.DB {
		return s.DB.Model(&models.Organization{}).
			Joins("JOIN organization_activities ON organization_activities.organization_id = organizations.id").
			Where("organization_activities.activity_id = ?", activityID)
	}
	return paginateOrganizations(newQuery, limit, offset)
}

// 4. SearchByActivityTree 按活动及其全部后代搜索组织。
// 一个组织可能同时关联多个后代活动，结果必须去重，count 反映去重后的数量。
func (s *OrganizationService) SearchByActivityTree(activityID uint, limit, offset int) ([]models.Organization, int64, error) {
	activityIDs, err := s.ActivityService.GetDescendantIDs(activityID, true)
	if err != nil {
		return nil, 0, err
	}
	if len(activityIDs) == 0 {
		return []models.Organization{}, 0, nil
	}

	newQuery := func() *gorm.DB {
		return s.DB.Model(&models.Organization{}).
			Joins("JOIN organization_activities ON organization_activities.organization_id = organizations.id").
			Where("organization_activities.activity_id IN ?", activityIDs)
	}

	var total int64
	if err := newQuery().Distinct("organizations.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orgs := make([]models.Organization, 0, limit)
	err = newQuery().
		Select("organizations.*").
		Group("organizations.id").
		Order("organizations.id").
		Limit(limit).Offset(offset).
		Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// 5. SearchByName 按名称子串搜索组织（不区分大小写）
func (s *OrganizationService) SearchByName(name string, limit, offset int) ([]models.Organization, int64, error) {
	newQuery := func() *gorm.DB {
		return s.DB.Model(&models.Organization{}).
			Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}
	return paginateOrganizations(newQuery, limit, offset)
}

// 6. SearchInRadius 搜索指定点半径范围内的组织。
// bbox 预过滤与 Haversine 精确距离都作为存储端谓词执行，
// 因此 count 与分页都基于精确过滤后的集合。
func (s *OrganizationService) SearchInRadius(lat, lng, radiusMeters float64, limit, offset int) ([]models.Organization, int64, error) {
	newQuery := func() *gorm.DB {
		query := s.joinBuildings()
		return geo.ApplyRadiusFilter(query, lat, lng, radiusMeters)
	}
	return paginateOrganizations(newQuery, limit, offset)
}

// 7. SearchInRectangle 搜索矩形区域内的组织，只做范围比较，不计算距离
func (s *OrganizationService) SearchInRectangle(latMin, latMax, lngMin, lngMax float64, limit, offset int) ([]models.Organization, int64, error) {
	newQuery := func() *gorm.DB {
		query := s.joinBuildings()
		return geo.ApplyRectangleFilter(query, latMin, latMax, lngMin, lngMax)
	}
	return paginateOrganizations(newQuery, limit, offset)
}

// joinBuildings 组织与楼宇的连接查询，地理条件在 buildings 的坐标列上求值
func (s *OrganizationService) joinBuildings() *gorm.DB {
	return s.DB.Model(&models.Organization{}).
		Joins("JOIN buildings ON buildings.id = organizations.building_id")
}

// paginateOrganizations 先取完整过滤集的总数，再取当前页。
// newQuery 每次调用都重新构造条件，避免 gorm 语句在 Count 和 Find 之间复用；
// 它不能携带select字段：gorm 的 Count 会把单个非count字段包装成 COUNT(列)，
// 而 "organizations.*" 不是合法列名。列投影只在取页时追加。
func paginateOrganizations(newQuery func() *gorm.DB, limit, offset int) ([]models.Organization, int64, error) {
	var total int64
	if err := newQuery().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orgs := make([]models.Organization, 0, limit)
	err := newQuery().
		Select("organizations.*").
		Order("organizations.id").
		Limit(limit).Offset(offset).
		Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}
