package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"directory-http-service/internal/domain/services"
	"directory-http-service/internal/infrastructure/config"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 业务服务
	activityService     services.InterfaceActivityService
	buildingService     services.InterfaceBuildingService
	organizationService services.InterfaceOrganizationService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.activityService = services.NewActivityService(c.db, c.config)
	c.buildingService = services.NewBuildingService(c.db, c.config)
	// 组织服务依赖活动服务做后代活动ID解析
	c.organizationService = services.NewOrganizationService(c.db, c.config, c.activityService)
}

// GetService 根据名称获取服务实例
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "activity":
		return c.activityService
	case "building":
		return c.buildingService
	case "organization":
		return c.organizationService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetRedis 获取Redis客户端（可能为nil，表示未启用缓存）
func (c *ServiceContainer) GetRedis() *redis.Client {
	return c.redis
}
