package handler

import (
	"errors"
	"net/http"
	"strconv"

	"blog_platform_api/internal/domain/comment/service"
	"blog_platform_api/internal/pkg/middleware"
	"blog_platform_api/pkg/logger"
	"blog_platform_api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommentHandler 评论处理器
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler 创建处理器
func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create 创建评论，认证可选：匿名评论默认待审核
func (h *CommentHandler) Create(c *gin.Context) {
	var input service.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.MsgCommentIncomplete)
		return
	}

	if input.PostID == 0 || input.Content == "" || input.AuthorName == "" {
		response.BadRequest(c, response.MsgCommentIncomplete)
		return
	}

	var identity *service.Identity
	if auth := middleware.GetAuth(c); auth != nil {
		if user, ok := auth.CurrentUser(c.Request.Context()); ok {
			identity = &service.Identity{UserID: user.ID}
		}
	}

	comment, err := h.service.Create(input, identity)
	if err != nil {
		if errors.Is(err, service.ErrParentMismatch) {
			response.BadRequest(c, response.MsgCommentInvalidParent)
			return
		}
		logger.Log.Error("failed to create comment", zap.Error(err))
		response.Unavailable(c, response.MsgCommentCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     response.MsgCommentCreated,
		"id":          comment.ID,
		"is_approved": comment.IsApproved,
	})
}

// ReadByPost 按文章取评论，一层回复嵌套
// include_unapproved 只对已认证调用方生效
func (h *CommentHandler) ReadByPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Query("post_id"), 10, 32)
	if err != nil || postID == 0 {
		response.BadRequest(c, response.MsgMissingPostID)
		return
	}

	includeUnapproved := false
	if c.Query("include_unapproved") == "true" {
		if auth := middleware.GetAuth(c); auth != nil && auth.IsAuthenticated(c.Request.Context()) {
			includeUnapproved = true
		}
	}

	records, err := h.service.GetByPost(uint(postID), includeUnapproved)
	if err != nil {
		logger.Log.Error("failed to read comments", zap.Uint64("post_id", postID), zap.Error(err))
		response.ServerError(c)
		return
	}
	response.Records(c, records)
}

// ModerateInput 审核入参
type ModerateInput struct {
	CommentID uint   `json:"comment_id"`
	Action    string `json:"action"`
}

// Moderate 审核评论：approve 或 delete
func (h *CommentHandler) Moderate(c *gin.Context) {
	var input ModerateInput
	if err := c.ShouldBindJSON(&input); err != nil || input.CommentID == 0 || input.Action == "" {
		response.BadRequest(c, response.MsgModerateIncomplete)
		return
	}

	// 先确认评论存在
	exists, err := h.service.Exists(input.CommentID)
	if err != nil {
		logger.Log.Error("failed to look up comment", zap.Uint("id", input.CommentID), zap.Error(err))
		response.ServerError(c)
		return
	}
	if !exists {
		response.NotFound(c, response.MsgCommentNotFound)
		return
	}

	switch input.Action {
	case "approve":
		if err := h.service.Approve(input.CommentID); err != nil {
			logger.Log.Error("failed to approve comment", zap.Uint("id", input.CommentID), zap.Error(err))
			response.Unavailable(c, response.MsgCommentApproveFailed)
			return
		}
		response.Message(c, http.StatusOK, response.MsgCommentApproved)

	case "delete":
		if err := h.service.Delete(input.CommentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, response.MsgCommentNotFound)
				return
			}
			logger.Log.Error("failed to delete comment", zap.Uint("id", input.CommentID), zap.Error(err))
			response.Unavailable(c, response.MsgCommentDeleteFailed)
			return
		}
		response.Message(c, http.StatusOK, response.MsgCommentDeleted)

	default:
		response.BadRequest(c, response.MsgCommentInvalidAction)
	}
}

// Moderation 待审核评论队列
func (h *CommentHandler) Moderation(c *gin.Context) {
	entries, err := h.service.ModerationQueue()
	if err != nil {
		logger.Log.Error("failed to load moderation queue", zap.Error(err))
		response.ServerError(c)
		return
	}
	response.Records(c, entries)
}
