package handler

import (
	"net/http"

	"blog_platform_api/internal/domain/category/service"
	"blog_platform_api/pkg/logger"
	"blog_platform_api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	service service.CategoryService
}

// NewCategoryHandler 创建处理器
func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// CreateInput 创建分类入参
type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Read 分类列表，字母序
func (h *CategoryHandler) Read(c *gin.Context) {
	records, err := h.service.List()
	if err != nil {
		logger.Log.Error("failed to list categories", zap.Error(err))
		response.ServerError(c)
		return
	}
	response.Records(c, records)
}

// Create 创建分类
func (h *CategoryHandler) Create(c *gin.Context) {
	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		response.BadRequest(c, response.MsgCategoryDataIncomplete)
		return
	}

	if err := h.service.Create(input.Name, input.Description); err != nil {
		logger.Log.Error("failed to create category", zap.Error(err))
		response.Unavailable(c, response.MsgCategoryCreateFailed)
		return
	}
	response.Message(c, http.StatusCreated, response.MsgCategoryCreated)
}
