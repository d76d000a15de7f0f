package model

import (
	"time"

	baseModel "blog_platform_api/pkg/model"
)

// Comment 评论模型
// user_id/clerk_id 为空表示匿名评论，parent_id 支持一层回复
type Comment struct {
	baseModel.BaseModel
	PostID     uint    `gorm:"not null;index" json:"post_id"`
	UserID     *string `gorm:"size:255" json:"user_id"`
	ClerkID    *string `gorm:"size:255" json:"clerk_id"`
	AuthorName string  `gorm:"size:100" json:"author_name"`
	Content    string  `gorm:"type:text;not null" json:"content"`
	ParentID   *uint   `gorm:"index" json:"parent_id"`
	IsApproved bool    `gorm:"default:false" json:"is_approved"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentResponse 顶层评论及其一层回复
type CommentResponse struct {
	Comment
	Replies []Comment `json:"replies"`
}

// ModerationEntry 待审核评论，连同所属文章标题
type ModerationEntry struct {
	ID         uint      `json:"id"`
	PostID     uint      `json:"post_id"`
	UserID     *string   `json:"user_id"`
	ClerkID    *string   `json:"clerk_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	ParentID   *uint     `json:"parent_id"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	PostTitle  string    `json:"post_title"`
}
