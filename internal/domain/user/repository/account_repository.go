package repository

import (
	"blog_platform_api/internal/domain/user/model"

	"gorm.io/gorm"
)

// AccountRepository 账号注销，跨偏好与资料两张表的唯一事务路径
type AccountRepository interface {
	// DeleteAccount 在单个事务中删除偏好与资料，任一步失败整体回滚
	// 资料行不存在返回 gorm.ErrRecordNotFound
	DeleteAccount(clerkID string) error
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository 创建新的仓库实例
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// DeleteAccount 事务性删除账号数据
func (r *accountRepository) DeleteAccount(clerkID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 偏好可能从未惰性创建，缺失不阻断注销
		if err := tx.Where("clerk_id = ?", clerkID).Delete(&model.UserPreferences{}).Error; err != nil {
			return err
		}

		// 资料必须存在，否则整体回滚并报告未找到
		var profile model.UserProfile
		if err := tx.Where("clerk_id = ?", clerkID).First(&profile).Error; err != nil {
			return err
		}

		result := tx.Where("clerk_id = ?", clerkID).Delete(&model.UserProfile{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
