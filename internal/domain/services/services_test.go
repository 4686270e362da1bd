package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"directory-http-service/internal/domain/models"
	"directory-http-service/internal/infrastructure/config"
	"directory-http-service/internal/infrastructure/database"
)

var testConfig = &config.Config{
	PageSizeDefault: 20,
	PageSizeMax:     100,
}

// setupTestDB 创建内存SQLite数据库并完成表迁移。
// 限制连接数为1：每个 :memory: 连接都是独立的数据库。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Building{},
		&models.Activity{},
		&models.Organization{},
		&models.OrganizationPhone{},
	))
	return db
}

// setupSeededDB 创建已填充示例数据的内存数据库
func setupSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := setupTestDB(t)
	require.NoError(t, database.Seed(db))
	return db
}

func activityIDByName(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	var activity models.Activity
	require.NoError(t, db.Where("name = ?", name).First(&activity).Error)
	return activity.ID
}

func buildingIDByAddress(t *testing.T, db *gorm.DB, address string) uint {
	t.Helper()

	var building models.Building
	require.NoError(t, db.Where("address LIKE ?", "%"+address+"%").First(&building).Error)
	return building.ID
}

func organizationIDByName(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	var org models.Organization
	require.NoError(t, db.Where("name LIKE ?", "%"+name+"%").First(&org).Error)
	return org.ID
}

func organizationNames(orgs []models.Organization) []string {
	names := make([]string, 0, len(orgs))
	for _, org := range orgs {
		names = append(names, org.Name)
	}
	return names
}
