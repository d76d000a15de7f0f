package handler

import (
	"errors"
	"net/http"

	"blog_platform_api/internal/domain/user/service"
	"blog_platform_api/pkg/logger"
	"blog_platform_api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler 遗留本地账号处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建处理器
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterInput 注册入参
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginInput 登录入参
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register 注册本地账号
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.MsgUserDataIncomplete)
		return
	}
	if input.Username == "" || input.Password == "" || input.Email == "" {
		response.BadRequest(c, response.MsgUserDataIncomplete)
		return
	}

	if err := h.service.Register(input.Username, input.Password, input.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			response.BadRequest(c, response.MsgUsernameExists)
		case errors.Is(err, service.ErrEmailTaken):
			response.BadRequest(c, response.MsgEmailExists)
		default:
			logger.Log.Error("failed to register user", zap.Error(err))
			response.Unavailable(c, response.MsgUserCreateFailed)
		}
		return
	}
	response.Message(c, http.StatusCreated, response.MsgUserCreated)
}

// Login 本地凭证登录
func (h *UserHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.MsgLoginDataIncomplete)
		return
	}
	if input.Username == "" || input.Password == "" {
		response.BadRequest(c, response.MsgLoginDataIncomplete)
		return
	}

	user, token, err := h.service.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginFailed) {
			response.Message(c, http.StatusUnauthorized, response.MsgLoginFailed)
			return
		}
		logger.Log.Error("failed to log in user", zap.Error(err))
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  response.MsgLoginSuccess,
		"user_id":  user.ID,
		"username": user.Username,
		"token":    token,
	})
}
