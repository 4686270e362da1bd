package models

// Building 表示楼宇信息，包含地址与地理坐标
type Building struct {
	BaseModel
	Address   string  `gorm:"type:varchar(500);not null" json:"address"`                        // 楼宇地址
	Latitude  float64 `gorm:"not null;index:ix_buildings_lat_lng,priority:1" json:"latitude"`   // 纬度 [-90, 90]
	Longitude float64 `gorm:"not null;index:ix_buildings_lat_lng,priority:2" json:"longitude"`  // 经度 [-180, 180]

	// 关联关系
	Organizations []Organization `gorm:"foreignKey:BuildingID" json:"organizations,omitempty"` // 楼宇内的组织（一对多）
}
