package models

// 活动层级约束：树的深度固定为 1~3 级
const (
	ActivityMinLevel = 1
	ActivityMaxLevel = 3
)

// Activity 表示业务活动分类，parent→children 构成深度不超过3级的树
type Activity struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null;index;uniqueIndex:uq_activity_name_parent" json:"name"` // 活动名称，同一父节点下唯一
	ParentID *uint  `gorm:"index;uniqueIndex:uq_activity_name_parent" json:"parent_id"`                       // 父活动ID，根节点为空
	Level    int    `gorm:"not null;default:1" json:"level"`                                                  // 层级：1（根）~ 3（叶）

	// 关联关系
	Children      []Activity     `gorm:"foreignKey:ParentID" json:"children,omitempty"`             // 子活动（一对多，自引用）
	Organizations []Organization `gorm:"many2many:organization_activities" json:"-"`                // 关联的组织（多对多）
}

// ActivityTree 活动树节点，GET /activities/ 的响应结构
type ActivityTree struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Level    int             `json:"level"`
	Children []*ActivityTree `json:"children"`
}
