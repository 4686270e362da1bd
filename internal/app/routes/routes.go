package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "directory-http-service/docs"
	"directory-http-service/internal/app/controllers"
	"directory-http-service/internal/app/middleware"
	"directory-http-service/internal/domain/services/container"
	"directory-http-service/internal/infrastructure/config"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// 请求ID中间件
	r.Use(middleware.RequestID())

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// 初始化响应缓存中间件
	middleware.InitCacheMiddleware(redisClient)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 注册公共路由
	registerPublicRoutes(r, container)
	// 注册需要API密钥的业务路由
	registerAuthenticatedRoutes(r, container)
}

// registerPublicRoutes 注册公共路由：健康检查不校验API密钥
func registerPublicRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	r.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	r.GET("/ping", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查的路由
}

// registerAuthenticatedRoutes 注册 /api/v1 下的业务路由
func registerAuthenticatedRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	cfg := container.GetConfig()

	api := r.Group("/api/v1")
	// 共享密钥认证：缺少请求头401，密钥不正确403
	api.Use(middleware.APIKeyAuth(cfg))
	// 通用限流中间件 - 每秒30个请求，最多突发50个请求
	api.Use(middleware.IPRateLimiter(30, 50))

	// 活动路由：目录数据只读，树结构可缓存
	activityGroup := api.Group("/activities")
	activityGroup.GET("/", middleware.Cache(middleware.CacheConfig{Expiration: cfg.CacheTTL}), controllers.HandleActivityFunc(container, "getActivities"))

	// 楼宇路由
	buildingGroup := api.Group("/buildings")
	buildingGroup.GET("/", middleware.Cache(middleware.CacheConfig{Expiration: cfg.CacheTTL}), controllers.HandleBuildingFunc(container, "getBuildings"))

	// 组织路由
	orgGroup := api.Group("/organizations")
	{
		orgGroup.GET("/by-building/:id", controllers.HandleOrganizationFunc(container, "getOrganizationsByBuilding"))
		orgGroup.GET("/by-activity/:id", controllers.HandleOrganizationFunc(container, "getOrganizationsByActivity"))
		orgGroup.GET("/search/activity/:id", controllers.HandleOrganizationFunc(container, "searchOrganizationsByActivity"))
		orgGroup.GET("/search/name", controllers.HandleOrganizationFunc(container, "searchOrganizationsByName"))
		orgGroup.GET("/search/radius", controllers.HandleOrganizationFunc(container, "searchOrganizationsInRadius"))
		orgGroup.GET("/search/rectangle", controllers.HandleOrganizationFunc(container, "searchOrganizationsInRectangle"))
		orgGroup.GET("/:id", controllers.HandleOrganizationFunc(container, "getOrganization"))
	}
}
