package category

import (
	"blog_platform_api/internal/domain/category/handler"
	"blog_platform_api/internal/domain/category/repository"
	"blog_platform_api/internal/domain/category/service"
	"blog_platform_api/internal/pkg/middleware"
	"blog_platform_api/internal/pkg/registry"
)

// CategoryModule 分类模块
type CategoryModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&CategoryModule{})
}

func (m *CategoryModule) Name() string {
	return "category"
}

func (m *CategoryModule) Priority() int {
	return 3
}

func (m *CategoryModule) Init(ctx *registry.ModuleContext) error {
	categoryRepo := repository.NewCategoryRepository(ctx.DB)
	categoryService := service.NewCategoryService(categoryRepo)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	group := ctx.Router.Group("/api/categories")
	{
		group.GET("/read", categoryHandler.Read)
	}

	protected := ctx.Router.Group("/api/categories")
	protected.Use(middleware.RequireAuth(ctx.Clerk))
	{
		protected.POST("/create", categoryHandler.Create)
	}

	return nil
}
