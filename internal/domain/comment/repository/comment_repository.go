package repository

import (
	"blog_platform_api/internal/domain/comment/model"

	"gorm.io/gorm"
)

// CommentRepository 评论仓库接口
type CommentRepository interface {
	Create(comment *model.Comment) error
	GetByID(id uint) (*model.Comment, error)
	GetByPost(postID uint, onlyApproved, topLevelOnly bool) ([]model.Comment, error)
	GetReplies(parentID uint, onlyApproved bool) ([]model.Comment, error)
	Approve(id uint) error
	Delete(id uint) error
	GetForModeration() ([]model.ModerationEntry, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建新的仓库实例
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create 创建评论
func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 根据ID获取评论
func (r *commentRepository) GetByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByPost 按文章取评论，时间升序
func (r *commentRepository) GetByPost(postID uint, onlyApproved, topLevelOnly bool) ([]model.Comment, error) {
	query := r.db.Where("post_id = ?", postID)
	if onlyApproved {
		query = query.Where("is_approved = ?", true)
	}
	if topLevelOnly {
		query = query.Where("parent_id IS NULL")
	}

	var comments []model.Comment
	if err := query.Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetReplies 取某条评论的回复，时间升序
func (r *commentRepository) GetReplies(parentID uint, onlyApproved bool) ([]model.Comment, error) {
	query := r.db.Where("parent_id = ?", parentID)
	if onlyApproved {
		query = query.Where("is_approved = ?", true)
	}

	var replies []model.Comment
	if err := query.Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// Approve 通过评论
// 重复通过在 MySQL 下零行受影响，存在性由上层先行确认
func (r *commentRepository) Approve(id uint) error {
	return r.db.Model(&model.Comment{}).Where("id = ?", id).
		Update("is_approved", true).Error
}

// Delete 删除评论，零行受影响视为不存在
func (r *commentRepository) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&model.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetForModeration 全部待审核评论，连同所属文章标题
func (r *commentRepository) GetForModeration() ([]model.ModerationEntry, error) {
	var entries []model.ModerationEntry
	err := r.db.Table("comments").
		Select("comments.id, comments.post_id, comments.user_id, comments.clerk_id, comments.author_name, comments.content, comments.parent_id, comments.is_approved, comments.created_at, posts.title AS post_title").
		Joins("LEFT JOIN posts ON comments.post_id = posts.id").
		Where("comments.is_approved = ?", false).
		Order("comments.created_at ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
