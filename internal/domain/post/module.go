package post

import (
	"blog_platform_api/internal/domain/post/handler"
	"blog_platform_api/internal/domain/post/repository"
	"blog_platform_api/internal/domain/post/service"
	"blog_platform_api/internal/pkg/clerk"
	"blog_platform_api/internal/pkg/middleware"
	"blog_platform_api/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// PostModule 文章模块
type PostModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&PostModule{})
}

func (m *PostModule) Name() string {
	return "post"
}

func (m *PostModule) Priority() int {
	return 2
}

func (m *PostModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	postRepo := repository.NewPostRepository(ctx.DB)
	postService := service.NewPostService(postRepo)
	postHandler := handler.NewPostHandler(postService)

	// 2. 路由注册
	setupRoutes(ctx.Router, ctx.Clerk, postHandler)

	return nil
}

func setupRoutes(r *gin.Engine, clerkClient *clerk.Client, h *handler.PostHandler) {
	group := r.Group("/api/posts")
	{
		// 公开读取
		group.GET("/read", h.Read)
		group.GET("/read_one", h.ReadOne)
	}

	// 写操作需要认证
	protected := r.Group("/api/posts")
	protected.Use(middleware.RequireAuth(clerkClient))
	{
		protected.POST("/create", h.Create)
		protected.POST("/update", h.Update)
		protected.POST("/delete", h.Delete)
	}
}
