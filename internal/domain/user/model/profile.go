package model

import (
	"encoding/json"
	"time"

	baseModel "blog_platform_api/pkg/model"
	"blog_platform_api/pkg/utils"
)

// SocialLink 社交链接
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// UserProfile 用户资料，按外部身份 clerk_id 唯一
// roles/social_links 以 JSON 文本落库
type UserProfile struct {
	baseModel.BaseModel
	UserID      string `gorm:"size:255" json:"user_id"`
	ClerkID     string `gorm:"size:255;uniqueIndex;not null" json:"clerk_id"`
	DisplayName string `gorm:"size:100" json:"display_name"`
	Bio         string `gorm:"type:text" json:"bio"`
	AvatarURL   string `gorm:"size:255" json:"avatar_url"`
	Website     string `gorm:"size:255" json:"website"`
	SocialLinks string `gorm:"type:text" json:"-"`
	Email       string `gorm:"size:255" json:"email"`
	Roles       string `gorm:"type:text" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// ProfileResponse 对外资料结构，JSON 列解码为结构化字段
type ProfileResponse struct {
	ID          uint         `json:"id"`
	ClerkID     string       `json:"clerk_id"`
	DisplayName string       `json:"display_name"`
	Bio         string       `json:"bio"`
	Website     string       `json:"website"`
	AvatarURL   string       `json:"avatar_url"`
	Email       string       `json:"email"`
	Roles       []string     `json:"roles"`
	SocialLinks []SocialLink `json:"social_links"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ToResponse 转换为响应结构
func (p *UserProfile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		ClerkID:     p.ClerkID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Website:     p.Website,
		AvatarURL:   p.AvatarURL,
		Email:       p.Email,
		Roles:       utils.DecodeStringList(p.Roles),
		SocialLinks: decodeSocialLinks(p.SocialLinks),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// decodeSocialLinks 解码社交链接 JSON，坏数据降级为空数组
func decodeSocialLinks(raw string) []SocialLink {
	if raw == "" {
		return []SocialLink{}
	}
	var links []SocialLink
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return []SocialLink{}
	}
	return links
}

// EncodeSocialLinks 编码社交链接为 JSON 文本
func EncodeSocialLinks(links []SocialLink) string {
	if links == nil {
		links = []SocialLink{}
	}
	b, err := json.Marshal(links)
	if err != nil {
		return "[]"
	}
	return string(b)
}
