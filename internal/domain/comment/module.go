package comment

import (
	"blog_platform_api/internal/domain/comment/handler"
	"blog_platform_api/internal/domain/comment/repository"
	"blog_platform_api/internal/domain/comment/service"
	"blog_platform_api/internal/pkg/middleware"
	"blog_platform_api/internal/pkg/registry"
)

// CommentModule 评论模块
type CommentModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&CommentModule{})
}

func (m *CommentModule) Name() string {
	return "comment"
}

func (m *CommentModule) Priority() int {
	return 4
}

func (m *CommentModule) Init(ctx *registry.ModuleContext) error {
	commentRepo := repository.NewCommentRepository(ctx.DB)
	commentService := service.NewCommentService(commentRepo)
	commentHandler := handler.NewCommentHandler(commentService)

	// 创建与按文章读取对匿名开放，身份仅用于审核默认值与过滤
	open := ctx.Router.Group("/api/comments")
	open.Use(middleware.OptionalAuth(ctx.Clerk))
	{
		open.POST("/create", commentHandler.Create)
		open.GET("/read_by_post", commentHandler.ReadByPost)
	}

	protected := ctx.Router.Group("/api/comments")
	protected.Use(middleware.RequireAuth(ctx.Clerk))
	{
		protected.POST("/moderate", commentHandler.Moderate)
		protected.GET("/moderation", commentHandler.Moderation)
	}

	return nil
}
