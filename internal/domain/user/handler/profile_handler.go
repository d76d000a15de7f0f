package handler

import (
	"errors"
	"net/http"

	"blog_platform_api/internal/domain/user/service"
	"blog_platform_api/internal/pkg/clerk"
	"blog_platform_api/internal/pkg/middleware"
	"blog_platform_api/pkg/logger"
	"blog_platform_api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileHandler 资料、偏好与账号注销处理器
type ProfileHandler struct {
	profiles    service.ProfileService
	preferences service.PreferencesService
}

// NewProfileHandler 创建处理器
func NewProfileHandler(profiles service.ProfileService, preferences service.PreferencesService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, preferences: preferences}
}

// currentUser 从请求身份视图取当前用户，路由已挂 RequireAuth
func currentUser(c *gin.Context) (*clerk.User, bool) {
	auth := middleware.GetAuth(c)
	if auth == nil {
		return nil, false
	}
	return auth.CurrentUser(c.Request.Context())
}

// Profile 返回资料，新身份按身份属性惰性建档
func (h *ProfileHandler) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	profile, created, err := h.profiles.GetOrCreate(user)
	if err != nil {
		logger.Log.Error("failed to load profile", zap.String("clerk_id", user.ID), zap.Error(err))
		response.Unavailable(c, response.MsgProfileCreateFailed)
		return
	}

	if created {
		response.Created(c, profile)
		return
	}
	response.OK(c, profile)
}

// UpdateProfile 更新资料，不存在时先建档
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input service.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.MsgNoData)
		return
	}

	profile, created, err := h.profiles.Upsert(user, input)
	if err != nil {
		logger.Log.Error("failed to update profile", zap.String("clerk_id", user.ID), zap.Error(err))
		response.Unavailable(c, response.MsgProfileUpdateFailed)
		return
	}

	if created {
		response.Created(c, profile)
		return
	}
	response.OK(c, profile)
}

// Preferences 返回偏好，新身份写入缺省值
func (h *ProfileHandler) Preferences(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	prefs, created, err := h.preferences.GetOrCreate(user.ID)
	if err != nil {
		logger.Log.Error("failed to load preferences", zap.String("clerk_id", user.ID), zap.Error(err))
		response.Message(c, http.StatusInternalServerError, response.MsgPreferencesCreateFailed)
		return
	}

	if created {
		response.Created(c, prefs)
		return
	}
	response.OK(c, prefs)
}

// UpdatePreferences 校验并增量更新偏好
// 未知字段名与非法枚举值按 400 拒绝
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		response.BadRequest(c, response.MsgNoData)
		return
	}

	prefs, created, err := h.preferences.Update(user.ID, fields)
	if err != nil {
		var validation *service.ValidationError
		if errors.As(err, &validation) {
			response.BadRequest(c, validation.Error())
			return
		}
		logger.Log.Error("failed to update preferences", zap.String("clerk_id", user.ID), zap.Error(err))
		response.Message(c, http.StatusInternalServerError, response.MsgPreferencesFailed)
		return
	}

	if created {
		response.Created(c, prefs)
		return
	}
	response.OK(c, prefs)
}

// DeleteAccountInput 注销确认入参
type DeleteAccountInput struct {
	Confirmation string `json:"confirmation"`
}

// DeleteAccount 注销账号
// 确认文本必须严格等于 DELETE，校验不过不触发任何写入
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input DeleteAccountInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Confirmation != "DELETE" {
		response.BadRequest(c, response.MsgInvalidConfirmation)
		return
	}

	if err := h.preferences.DeleteAccount(user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, response.MsgProfileNotFound)
			return
		}
		logger.Log.Error("failed to delete account", zap.String("clerk_id", user.ID), zap.Error(err))
		response.Unavailable(c, response.MsgProfileDeleteFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": response.MsgAccountDeleted,
		"success": true,
	})
}
