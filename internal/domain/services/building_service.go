package services

import (
	"gorm.io/gorm"

	"directory-http-service/internal/domain/models"
	"directory-http-service/internal/infrastructure/config"
)

// InterfaceBuildingService 定义楼宇服务接口
type InterfaceBuildingService interface {
	GetAllBuildings(limit, offset int) ([]models.Building, int64, error)
}

// BuildingService 提供楼宇相关的服务
type BuildingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBuildingService 创建一个新的楼宇服务
func NewBuildingService(db *gorm.DB, cfg *config.Config) InterfaceBuildingService {
	return &BuildingService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllBuildings 获取所有楼宇列表，支持分页
func (s *BuildingService) GetAllBuildings(limit, offset int) ([]models.Building, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Building{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var buildings []models.Building
	if err := s.DB.Order("id").Limit(limit).Offset(offset).Find(&buildings).Error; err != nil {
		return nil, 0, err
	}

	return buildings, total, nil
}
