// @title           Organization Directory API
// @version         1.0
// @description     REST API приложение для справочника Организаций, Зданий и Деятельности. Все запросы к /api/v1/* требуют заголовок X-API-Key.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Shared secret API key
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"directory-http-service/internal/app/routes"
	"directory-http-service/internal/domain/models"
	"directory-http-service/internal/infrastructure/config"
	"directory-http-service/internal/infrastructure/database"
	Logger "directory-http-service/pkg/logger"
)

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 创建数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法创建数据库连接池: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	// 迁移表结构；seed模式额外填充示例数据
	if err := autoMigrate(db); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}
	if cfg.DBMigrationMode == "seed" {
		log.Println("在seed模式下运行，将填充示例数据")
		if err := database.Seed(db); err != nil {
			log.Fatalf("填充示例数据失败: %v", err)
		}
	}

	// 创建Redis客户端，用于只读接口的响应缓存
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	// 设置运行模式
	if cfg.EnvType == "SERVER" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := routes.SetupRouter(db, cfg, redisClient)

	// 启动服务
	Logger.Info("服务启动，监听端口: %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}

// autoMigrate 迁移目录服务的全部表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Building{},
		&models.Activity{},
		&models.Organization{},
		&models.OrganizationPhone{},
	)
}
