package models

// Organization 表示组织信息，必须归属一个楼宇
type Organization struct {
	BaseModel
	Name       string `gorm:"type:varchar(255);not null;index" json:"name"` // 组织名称
	BuildingID uint   `gorm:"not null;index" json:"building_id"`            // 所在楼宇ID

	// 关联关系
	Building   Building            `gorm:"foreignKey:BuildingID" json:"building,omitempty"`                              // 所在楼宇（多对一，楼宇可被多个组织共享）
	Phones     []OrganizationPhone `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"phones"`          // 电话号码（独占，随组织级联删除）
	Activities []Activity          `gorm:"many2many:organization_activities" json:"activities,omitempty"`                // 业务活动（多对多）
}

// OrganizationPhone 表示组织的电话号码，号码全局唯一
type OrganizationPhone struct {
	BaseModel
	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`              // 所属组织ID
	PhoneNumber    string `gorm:"type:varchar(20);unique;not null" json:"phone_number"` // 电话号码
}
