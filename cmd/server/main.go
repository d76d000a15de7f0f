package main

import (
	"net/http"

	"blog_platform_api/internal/pkg/clerk"
	"blog_platform_api/internal/pkg/config"
	"blog_platform_api/internal/pkg/middleware"
	"blog_platform_api/internal/pkg/registry"
	"blog_platform_api/pkg/database"
	"blog_platform_api/pkg/logger"

	// 各领域模块通过 init() 自动注册
	_ "blog_platform_api/internal/domain/category"
	_ "blog_platform_api/internal/domain/comment"
	_ "blog_platform_api/internal/domain/post"
	_ "blog_platform_api/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// 2. 初始化日志
	if err := logger.Init(cfg.App.Debug); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// 3. 连接数据库
	db, err := database.Connect(cfg.Database, cfg.App.Debug)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// 4. 初始化外部身份服务客户端
	clerkClient := clerk.NewClient(cfg.Clerk)

	// 5. 初始化路由和全局中间件
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.TraceMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// 健康检查与运维端点
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 6. 按优先级初始化所有业务模块
	moduleCtx := &registry.ModuleContext{
		DB:     db,
		Clerk:  clerkClient,
		Config: cfg,
		Router: router,
	}
	if err := registry.InitModules(moduleCtx); err != nil {
		logger.Log.Fatal("Failed to initialize modules", zap.Error(err))
	}

	// 7. 启动服务
	logger.Log.Info("Server starting", zap.String("port", cfg.Server.Port), zap.String("env", cfg.App.Env))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
