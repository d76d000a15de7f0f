package service

import (
	"errors"

	"blog_platform_api/internal/domain/comment/model"
	"blog_platform_api/internal/domain/comment/repository"
	"blog_platform_api/pkg/sanitize"

	"gorm.io/gorm"
)

// ErrParentMismatch 回复指向的父评论不存在或不属于同一篇文章
var ErrParentMismatch = errors.New("parent comment does not exist on this post")

// CreateInput 创建评论入参
type CreateInput struct {
	PostID     uint   `json:"post_id"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
	ParentID   *uint  `json:"parent_id"`
}

// Identity 已认证调用方的身份，匿名时为 nil
type Identity struct {
	UserID string
}

// CommentService 评论服务接口
type CommentService interface {
	Create(input CreateInput, identity *Identity) (*model.Comment, error)
	GetByPost(postID uint, includeUnapproved bool) ([]model.CommentResponse, error)
	Approve(id uint) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	ModerationQueue() ([]model.ModerationEntry, error)
}

type commentService struct {
	repo repository.CommentRepository
}

// NewCommentService 创建评论服务
func NewCommentService(repo repository.CommentRepository) CommentService {
	return &commentService{repo: repo}
}

// Create 创建评论
// 认证调用方默认通过审核，匿名评论进入待审核队列；
// 回复必须指向同一篇文章下已存在的评论
func (s *commentService) Create(input CreateInput, identity *Identity) (*model.Comment, error) {
	if input.ParentID != nil {
		parent, err := s.repo.GetByID(*input.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentMismatch
			}
			return nil, err
		}
		if parent.PostID != input.PostID {
			return nil, ErrParentMismatch
		}
	}

	comment := &model.Comment{
		PostID:     input.PostID,
		AuthorName: sanitize.Plain(input.AuthorName),
		Content:    sanitize.Plain(input.Content),
		ParentID:   input.ParentID,
	}

	if identity != nil {
		comment.UserID = &identity.UserID
		comment.ClerkID = &identity.UserID
		comment.IsApproved = true
	}

	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetByPost 顶层评论带一层回复
// includeUnapproved 为真时（调用方已认证）返回待审核评论
func (s *commentService) GetByPost(postID uint, includeUnapproved bool) ([]model.CommentResponse, error) {
	onlyApproved := !includeUnapproved

	topLevel, err := s.repo.GetByPost(postID, onlyApproved, true)
	if err != nil {
		return nil, err
	}

	records := make([]model.CommentResponse, 0, len(topLevel))
	for i := range topLevel {
		replies, err := s.repo.GetReplies(topLevel[i].ID, onlyApproved)
		if err != nil {
			return nil, err
		}
		if replies == nil {
			replies = []model.Comment{}
		}
		records = append(records, model.CommentResponse{
			Comment: topLevel[i],
			Replies: replies,
		})
	}
	return records, nil
}

// Approve 通过评论，先确认存在
func (s *commentService) Approve(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Approve(id)
}

// Delete 删除评论
func (s *commentService) Delete(id uint) error {
	return s.repo.Delete(id)
}

// Exists 评论是否存在
func (s *commentService) Exists(id uint) (bool, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ModerationQueue 待审核评论列表
func (s *commentService) ModerationQueue() ([]model.ModerationEntry, error) {
	return s.repo.GetForModeration()
}
