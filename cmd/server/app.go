/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-03-04 10:35:28
 * @LastEditTime: 2026-06-22 16:15:28
 * @LastEditors: 安知鱼
 */
// picmeta-app/cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/picmeta-app/internal/app/middleware"
	"github.com/anzhiyu-c/picmeta-app/internal/app/task"
	"github.com/anzhiyu-c/picmeta-app/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/picmeta-app/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/picmeta-app/internal/infra/router"
	"github.com/anzhiyu-c/picmeta-app/internal/pkg/version"
	"github.com/anzhiyu-c/picmeta-app/pkg/config"
	image_handler "github.com/anzhiyu-c/picmeta-app/pkg/handler/image"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/ai"
	export_service "github.com/anzhiyu-c/picmeta-app/pkg/service/export"
	keyword_service "github.com/anzhiyu-c/picmeta-app/pkg/service/keyword"
	parser_service "github.com/anzhiyu-c/picmeta-app/pkg/service/parser"
	upload_service "github.com/anzhiyu-c/picmeta-app/pkg/service/upload"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	scheduler  *task.Scheduler
	sqlDB      *sql.DB
	appVersion string
}

// PrintBanner 打印启动横幅。
func (a *App) PrintBanner() {
	banner := `

      ██████╗ ██╗ ██████╗███╗   ███╗███████╗████████╗ █████╗
      ██╔══██╗██║██╔════╝████╗ ████║██╔════╝╚══██╔══╝██╔══██╗
      ██████╔╝██║██║     ██╔████╔██║█████╗     ██║   ███████║
      ██╔═══╝ ██║██║     ██║╚██╔╝██║██╔══╝     ██║   ██╔══██║
      ██║     ██║╚██████╗██║ ╚═╝ ██║███████╗   ██║   ██║  ██║
      ╚═╝     ╚═╝ ╚═════╝╚═╝     ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝

`
	log.Println(banner)
	log.Println("--------------------------------------------------------")
	log.Printf(" PicMeta App - Version: %s", version.GetVersionString())
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// 在初始化早期获取版本信息
	appVersion := version.GetVersion()

	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（如果失败，将自动降级为无缓存模式）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	// --- Phase 3: 初始化数据仓库层 ---
	metadataRepo := ent_impl.NewEntImageMetadataRepository(entClient)

	// --- Phase 4: 初始化服务层 ---
	keywordSvc := keyword_service.NewService(metadataRepo, redisClient)
	exportSvc := export_service.NewService()
	analyzer := ai.NewAnalyzerFromConfig(cfg)

	// 解析器注册顺序即合并优先级：EXIF 的字段优先于 XMP
	parsers := []parser_service.ImageParser{
		parser_service.NewExifParser(),
		parser_service.NewXmpParser(),
	}

	uploadSvc := upload_service.NewService(
		parsers,
		analyzer,
		keywordSvc,
		metadataRepo,
		redisClient,
		cfg.MaxUploadBytes(),
	)

	// --- Phase 5: 初始化处理器层 ---
	imageHandler := image_handler.NewHandler(
		uploadSvc,
		keywordSvc,
		exportSvc,
		metadataRepo,
		cfg.MaxBatchFiles(),
	)

	// --- Phase 6: 初始化定时任务 ---
	scheduler := task.NewScheduler(metadataRepo, keywordSvc)

	// --- Phase 7: 初始化路由 ---
	appRouter := router.NewRouter(imageHandler)

	// --- Phase 8: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	err = engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	if err != nil {
		return nil, nil, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	// 批量上传的请求体可能接近 上限*批量数，放宽 multipart 内存阈值
	engine.MaxMultipartMemory = 32 << 20

	appRouter.Setup(engine)

	// 将所有初始化好的组件装配到 App 实例中
	app := &App{
		cfg:        cfg,
		engine:     engine,
		scheduler:  scheduler,
		sqlDB:      sqlDB,
		appVersion: appVersion,
	}

	// 创建cleanup函数
	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()

		// 关闭 Redis 连接（如果存在）
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	return app, cleanup, nil
}

// Config 返回应用配置。
func (a *App) Config() *config.Config {
	return a.cfg
}

// Engine 返回 Gin 引擎，便于测试时直接驱动。
func (a *App) Engine() *gin.Engine {
	return a.engine
}

// DB 返回底层数据库连接池。
func (a *App) DB() *sql.DB {
	return a.sqlDB
}

// Run 注册后台任务并启动 HTTP 服务，阻塞直到服务退出。
func (a *App) Run() error {
	a.scheduler.RegisterJobs()
	a.scheduler.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

// Stop 停止后台任务调度器。
func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
}
