package services

import (
	"errors"

	"gorm.io/gorm"

	"directory-http-service/internal/domain/models"
	"directory-http-service/internal/infrastructure/config"
)

// InterfaceActivityService 定义活动分类服务接口
type InterfaceActivityService interface {
	GetActivityTree() ([]*models.ActivityTree, error)
	GetDescendantIDs(activityID uint, includeSelf bool) ([]uint, error)
}

// ActivityService 提供活动分类相关的服务
type ActivityService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewActivityService 创建一个新的活动分类服务
func NewActivityService(db *gorm.DB, cfg *config.Config) InterfaceActivityService {
	return &ActivityService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetActivityTree 获取完整的活动树（根节点及其嵌套children）
func (s *ActivityService) GetActivityTree() ([]*models.ActivityTree, error) {
	var activities []models.Activity
	if err := s.DB.Order("id").Find(&activities).Error; err != nil {
		return nil, err
	}

	return buildActivityTree(activities), nil
}

// 2. GetDescendantIDs 获取活动及其所有后代的ID集合。
// 活动不存在时返回空集合而不是错误：未知的活动ID是合法（但无结果）的过滤条件。
//
// 树的深度上限为3级（硬性约束），因此两跳查询即可覆盖全部后代，
// 无需通用递归。若放宽深度上限，必须改为迭代的逐层扩展。
func (s *ActivityService) GetDescendantIDs(activityID uint, includeSelf bool) ([]uint, error) {
	var activity models.Activity
	err := s.DB.Select("id", "level").First(&activity, activityID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []uint{}, nil
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, 8)
	if includeSelf {
		ids = append(ids, activity.ID)
	}

	// 叶子层级不可能有后代
	if activity.Level >= models.ActivityMaxLevel {
		return ids, nil
	}

	// 第一跳：按 parent_id 索引查直接子节点
	var childIDs []uint
	if err := s.DB.Model(&models.Activity{}).
		Where("parent_id = ?", activityID).
		Pluck("id", &childIDs).Error; err != nil {
		return nil, err
	}
	ids = append(ids, childIDs...)

	// 第二跳：根节点再查一次孙节点（单次 IN 查询，不是逐个子节点查询）
	if activity.Level == models.ActivityMinLevel && len(childIDs) > 0 {
		var grandchildIDs []uint
		if err := s.DB.Model(&models.Activity{}).
			Where("parent_id IN ?", childIDs).
			Pluck("id", &grandchildIDs).Error; err != nil {
			return nil, err
		}
		ids = append(ids, grandchildIDs...)
	}

	return ids, nil
}

// buildActivityTree 单次遍历把平铺的活动集合组装为树：
// 先建 id→节点 映射，无父节点的作为根；引用了未知父ID的子节点被静默丢弃
// （防御性处理，外键完整性保证下不应出现）。
func buildActivityTree(activities []models.Activity) []*models.ActivityTree {
	nodes := make(map[uint]*models.ActivityTree, len(activities))
	for _, act := range activities {
		nodes[act.ID] = &models.ActivityTree{
			ID:       act.ID,
			Name:     act.Name,
			Level:    act.Level,
			Children: []*models.ActivityTree{},
		}
	}

	roots := make([]*models.ActivityTree, 0)
	for _, act := range activities {
		node := nodes[act.ID]
		if act.ParentID == nil {
			roots = append(roots, node)
		} else if parent, ok := nodes[*act.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}

	return roots
}
