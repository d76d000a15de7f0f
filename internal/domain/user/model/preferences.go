package model

import "time"

// 偏好枚举取值
var (
	ValidThemes    = []string{"light", "dark", "system"}
	ValidLanguages = []string{"en", "es", "fr", "de"}
)

// UserPreferences 用户偏好，按外部身份 clerk_id 唯一，首次访问惰性创建
type UserPreferences struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClerkID          string    `gorm:"size:255;uniqueIndex;not null" json:"clerk_id"`
	Theme            string    `gorm:"size:50;default:system" json:"theme"`
	Language         string    `gorm:"size:10;default:en" json:"language"`
	AutoSave         bool      `gorm:"default:true" json:"auto_save"`
	TwoFactorEnabled bool      `gorm:"default:false" json:"two_factor_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}

// DefaultPreferences 新身份的缺省偏好
func DefaultPreferences(clerkID string) *UserPreferences {
	return &UserPreferences{
		ClerkID:          clerkID,
		Theme:            "system",
		Language:         "en",
		AutoSave:         true,
		TwoFactorEnabled: false,
	}
}
