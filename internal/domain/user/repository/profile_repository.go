package repository

import (
	"errors"

	"blog_platform_api/internal/domain/user/model"

	"gorm.io/gorm"
)

// ProfileRepository 用户资料仓库接口
type ProfileRepository interface {
	GetByClerkID(clerkID string) (*model.UserProfile, error)
	// Create 幂等：同一 clerk_id 已有记录时转为更新，不产生重复行
	Create(profile *model.UserProfile) error
	Update(profile *model.UserProfile) error
	DeleteByClerkID(clerkID string) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建新的仓库实例
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetByClerkID 按外部身份取资料
func (r *profileRepository) GetByClerkID(clerkID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := r.db.Where("clerk_id = ?", clerkID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create 创建资料，clerk_id 冲突时退化为更新
// clerk_id 上的唯一约束兜底并发下的重复插入
func (r *profileRepository) Create(profile *model.UserProfile) error {
	existing, err := r.GetByClerkID(profile.ClerkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(profile).Error
		}
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.Update(profile)
}

// Update 整行更新
func (r *profileRepository) Update(profile *model.UserProfile) error {
	return r.db.Save(profile).Error
}

// DeleteByClerkID 删除资料，零行受影响视为不存在
func (r *profileRepository) DeleteByClerkID(clerkID string) error {
	result := r.db.Where("clerk_id = ?", clerkID).Delete(&model.UserProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
