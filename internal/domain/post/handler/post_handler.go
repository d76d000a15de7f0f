package handler

import (
	"errors"
	"net/http"
	"strconv"

	"blog_platform_api/internal/domain/post/service"
	"blog_platform_api/internal/pkg/middleware"
	"blog_platform_api/pkg/logger"
	"blog_platform_api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostHandler 文章处理器
type PostHandler struct {
	service service.PostService
}

// NewPostHandler 创建处理器
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Read 文章列表，空结果返回空 records 数组
func (h *PostHandler) Read(c *gin.Context) {
	records, err := h.service.List()
	if err != nil {
		logger.Log.Error("failed to list posts", zap.Error(err))
		response.Message(c, http.StatusInternalServerError, response.MsgPostsRetrieveFailed)
		return
	}
	response.Records(c, records)
}

// ReadOne 按 id 读取单篇文章
func (h *PostHandler) ReadOne(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		response.BadRequest(c, response.MsgMissingID)
		return
	}

	post, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, response.MsgPostNotFound)
			return
		}
		logger.Log.Error("failed to read post", zap.Uint("id", id), zap.Error(err))
		response.ServerError(c)
		return
	}
	response.OK(c, post)
}

// Create 创建文章，作者取自认证身份
func (h *PostHandler) Create(c *gin.Context) {
	var input service.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.MsgPostDataIncomplete)
		return
	}

	if input.Title == "" || input.Content == "" {
		response.BadRequest(c, response.MsgPostDataIncomplete)
		return
	}

	author := "Anonymous"
	if auth := middleware.GetAuth(c); auth != nil {
		if user, ok := auth.CurrentUser(c.Request.Context()); ok {
			author = user.AuthorName()
		}
	}

	if err := h.service.Create(input, author); err != nil {
		logger.Log.Error("failed to create post", zap.Error(err))
		response.Unavailable(c, response.MsgPostCreateFailed)
		return
	}
	response.Message(c, http.StatusCreated, response.MsgPostCreated)
}

// Update 部分更新文章
func (h *PostHandler) Update(c *gin.Context) {
	var input service.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == 0 {
		response.BadRequest(c, response.MsgPostUpdateNoID)
		return
	}

	if err := h.service.Update(input); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, response.MsgPostNotFound)
			return
		}
		logger.Log.Error("failed to update post", zap.Uint("id", input.ID), zap.Error(err))
		response.Unavailable(c, response.MsgPostUpdateFailed)
		return
	}
	response.Message(c, http.StatusOK, response.MsgPostUpdated)
}

// Delete 删除文章，零行受影响按 404 处理
func (h *PostHandler) Delete(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == 0 {
		response.BadRequest(c, response.MsgPostDeleteNoID)
		return
	}

	if err := h.service.Delete(input.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, response.MsgPostNotFound)
			return
		}
		logger.Log.Error("failed to delete post", zap.Uint("id", input.ID), zap.Error(err))
		response.Unavailable(c, response.MsgPostDeleteFailed)
		return
	}
	response.Message(c, http.StatusOK, response.MsgPostDeleted)
}

func parseID(raw string) (uint, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
