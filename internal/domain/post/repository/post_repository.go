package repository

import (
	"blog_platform_api/internal/domain/post/model"

	"gorm.io/gorm"
)

// PostRepository 文章仓库接口
type PostRepository interface {
	Create(post *model.Post) error
	GetAll() ([]model.Post, error)
	GetByID(id uint) (*model.Post, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

// postRepository 实现
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建新的仓库实例
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create 创建文章
func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// GetAll 获取全部文章，最新在前
func (r *postRepository) GetAll() ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID 根据ID获取文章
func (r *postRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update 部分更新，只更新显式传入的列
// 先确认记录存在，避免对不存在的 id 静默返回成功
func (r *postRepository) Update(id uint, fields map[string]interface{}) error {
	var count int64
	if err := r.db.Model(&model.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除文章，零行受影响视为不存在
func (r *postRepository) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&model.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
