package repository

import (
	"errors"

	"blog_platform_api/internal/domain/user/model"

	"gorm.io/gorm"
)

// PreferencesRepository 用户偏好仓库接口
type PreferencesRepository interface {
	GetByClerkID(clerkID string) (*model.UserPreferences, error)
	// Create 幂等：同一 clerk_id 已有记录时转为更新
	Create(prefs *model.UserPreferences) error
	Update(prefs *model.UserPreferences) error
	DeleteByClerkID(clerkID string) error
}

type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository 创建新的仓库实例
func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

// GetByClerkID 按外部身份取偏好
func (r *preferencesRepository) GetByClerkID(clerkID string) (*model.UserPreferences, error) {
	var prefs model.UserPreferences
	if err := r.db.Where("clerk_id = ?", clerkID).First(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Create 创建偏好，clerk_id 冲突时退化为更新
func (r *preferencesRepository) Create(prefs *model.UserPreferences) error {
	existing, err := r.GetByClerkID(prefs.ClerkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(prefs).Error
		}
		return err
	}

	prefs.ID = existing.ID
	prefs.CreatedAt = existing.CreatedAt
	return r.Update(prefs)
}

// Update 整行更新
func (r *preferencesRepository) Update(prefs *model.UserPreferences) error {
	return r.db.Save(prefs).Error
}

// DeleteByClerkID 删除偏好，零行受影响视为不存在
// 账号注销路径会忽略该情形（偏好可能从未惰性创建）
func (r *preferencesRepository) DeleteByClerkID(clerkID string) error {
	result := r.db.Where("clerk_id = ?", clerkID).Delete(&model.UserPreferences{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
