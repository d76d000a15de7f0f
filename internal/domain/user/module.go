package user

import (
	"blog_platform_api/internal/domain/user/handler"
	"blog_platform_api/internal/domain/user/repository"
	"blog_platform_api/internal/domain/user/service"
	"blog_platform_api/internal/pkg/middleware"
	"blog_platform_api/internal/pkg/registry"
)

// UserModule 用户模块
type UserModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	// 用户模块优先级最高，因为其他模块可能依赖它
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	userRepo := repository.NewUserRepository(ctx.DB)
	profileRepo := repository.NewProfileRepository(ctx.DB)
	preferencesRepo := repository.NewPreferencesRepository(ctx.DB)
	accountRepo := repository.NewAccountRepository(ctx.DB)

	userService := service.NewUserService(userRepo, service.TokenConfig{
		Secret:      ctx.Config.JWT.Secret,
		ExpireHours: ctx.Config.JWT.Expire,
	})
	profileService := service.NewProfileService(profileRepo)
	preferencesService := service.NewPreferencesService(preferencesRepo, accountRepo)

	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService, preferencesService)

	// 2. 路由注册
	open := ctx.Router.Group("/api/users")
	{
		open.POST("/register", userHandler.Register)
		open.POST("/login", userHandler.Login)
	}

	protected := ctx.Router.Group("/api/users")
	protected.Use(middleware.RequireAuth(ctx.Clerk))
	{
		protected.GET("/profile", profileHandler.Profile)
		protected.POST("/update_profile", profileHandler.UpdateProfile)
		protected.GET("/preferences", profileHandler.Preferences)
		protected.POST("/update_preferences", profileHandler.UpdatePreferences)
		protected.POST("/delete_account", profileHandler.DeleteAccount)
	}

	return nil
}
