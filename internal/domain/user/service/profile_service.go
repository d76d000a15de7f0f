package service

import (
	"errors"

	"blog_platform_api/internal/domain/user/model"
	"blog_platform_api/internal/domain/user/repository"
	"blog_platform_api/internal/pkg/clerk"
	"blog_platform_api/pkg/sanitize"
	"blog_platform_api/pkg/utils"

	"gorm.io/gorm"
)

// ProfileInput 资料更新入参，nil 字段保持原值
type ProfileInput struct {
	DisplayName *string            `json:"display_name"`
	Bio         *string            `json:"bio"`
	Website     *string            `json:"website"`
	AvatarURL   *string            `json:"avatar_url"`
	SocialLinks []model.SocialLink `json:"social_links"`
}

// ProfileService 用户资料服务接口
type ProfileService interface {
	// GetOrCreate 返回既有资料；新身份按身份服务属性惰性建档
	GetOrCreate(identity *clerk.User) (*model.ProfileResponse, bool, error)
	// Upsert 更新资料，不存在时先按身份属性建档再套用更新
	Upsert(identity *clerk.User, input ProfileInput) (*model.ProfileResponse, bool, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

// NewProfileService 创建资料服务
func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

// GetOrCreate 取资料，首次访问时从身份属性预填充
func (s *profileService) GetOrCreate(identity *clerk.User) (*model.ProfileResponse, bool, error) {
	profile, err := s.repo.GetByClerkID(identity.ID)
	if err == nil {
		resp := profile.ToResponse()
		return &resp, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	profile = newProfileFromIdentity(identity)
	if err := s.repo.Create(profile); err != nil {
		return nil, false, err
	}

	resp := profile.ToResponse()
	return &resp, true, nil
}

// Upsert 套用显式传入的字段后保存
func (s *profileService) Upsert(identity *clerk.User, input ProfileInput) (*model.ProfileResponse, bool, error) {
	created := false
	profile, err := s.repo.GetByClerkID(identity.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		profile = newProfileFromIdentity(identity)
		created = true
	}

	if input.DisplayName != nil {
		profile.DisplayName = sanitize.Plain(*input.DisplayName)
	}
	if input.Bio != nil {
		profile.Bio = sanitize.Plain(*input.Bio)
	}
	if input.Website != nil {
		profile.Website = sanitize.Plain(*input.Website)
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = sanitize.Plain(*input.AvatarURL)
	}
	if input.SocialLinks != nil {
		profile.SocialLinks = model.EncodeSocialLinks(input.SocialLinks)
	}

	if created {
		err = s.repo.Create(profile)
	} else {
		err = s.repo.Update(profile)
	}
	if err != nil {
		return nil, false, err
	}

	resp := profile.ToResponse()
	return &resp, created, nil
}

// newProfileFromIdentity 用身份服务属性预填充新资料
func newProfileFromIdentity(identity *clerk.User) *model.UserProfile {
	return &model.UserProfile{
		UserID:      identity.ID,
		ClerkID:     identity.ID,
		DisplayName: identity.DisplayName(),
		Email:       identity.PrimaryEmail(),
		AvatarURL:   identity.ImageURL,
		Bio:         "",
		Website:     "",
		Roles:       utils.EncodeStringList([]string{"user"}),
		SocialLinks: model.EncodeSocialLinks(nil),
	}
}
