package middleware

import (
	"blog_platform_api/internal/pkg/clerk"
	"blog_platform_api/pkg/response"

	"github.com/gin-gonic/gin"
)

const authContextKey = "clerkAuth"

// RequireAuth 认证中间件，凭证缺失或无效时以 401 短路
func RequireAuth(client *clerk.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := clerk.NewAuth(client, c.Request.Header)
		if !auth.IsAuthenticated(c.Request.Context()) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(authContextKey, auth)
		c.Next()
	}
}

// OptionalAuth 可选认证，匿名请求照常放行
// 处理器通过 GetAuth 自行判断调用方身份
func OptionalAuth(client *clerk.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(authContextKey, clerk.NewAuth(client, c.Request.Header))
		c.Next()
	}
}

// GetAuth 取出当前请求的身份视图
func GetAuth(c *gin.Context) *clerk.Auth {
	if v, exists := c.Get(authContextKey); exists {
		if auth, ok := v.(*clerk.Auth); ok {
			return auth
		}
	}
	return nil
}
