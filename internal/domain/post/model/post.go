package model

import (
	"time"

	baseModel "blog_platform_api/pkg/model"
	"blog_platform_api/pkg/utils"
)

// Post 文章模型
// Tags 列历史上既有 JSON 数组又有逗号分隔的遗留行，读取时统一解码
type Post struct {
	baseModel.BaseModel
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Excerpt  string `gorm:"type:text" json:"excerpt"`
	Author   string `gorm:"size:100" json:"author"`
	Category string `gorm:"size:100" json:"category"`
	Tags     string `gorm:"type:text" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// PostResponse 对外响应结构，tags 解码为数组
type PostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse 转换为响应结构
func (p *Post) ToResponse() PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Excerpt:   p.Excerpt,
		Author:    p.Author,
		Category:  p.Category,
		Tags:      utils.DecodeStringList(p.Tags),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
