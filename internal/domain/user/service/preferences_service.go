package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"blog_platform_api/internal/domain/user/model"
	"blog_platform_api/internal/domain/user/repository"

	"gorm.io/gorm"
)

// ValidationError 偏好入参校验错误，处理器按 400 报告文案
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

var preferenceFields = map[string]bool{
	"theme":              true,
	"language":           true,
	"auto_save":          true,
	"two_factor_enabled": true,
}

// PreferencesService 用户偏好服务接口
type PreferencesService interface {
	// GetOrCreate 返回既有偏好；新身份写入缺省值
	GetOrCreate(clerkID string) (*model.UserPreferences, bool, error)
	// Update 校验字段名与枚举取值后增量更新，不存在时先建缺省行
	Update(clerkID string, fields map[string]interface{}) (*model.UserPreferences, bool, error)
	// DeleteAccount 事务性删除偏好与资料
	DeleteAccount(clerkID string) error
}

type preferencesService struct {
	repo    repository.PreferencesRepository
	account repository.AccountRepository
}

// NewPreferencesService 创建偏好服务
func NewPreferencesService(repo repository.PreferencesRepository, account repository.AccountRepository) PreferencesService {
	return &preferencesService{repo: repo, account: account}
}

// GetOrCreate 取偏好，首次访问时落缺省行
func (s *preferencesService) GetOrCreate(clerkID string) (*model.UserPreferences, bool, error) {
	prefs, err := s.repo.GetByClerkID(clerkID)
	if err == nil {
		return prefs, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	prefs = model.DefaultPreferences(clerkID)
	if err := s.repo.Create(prefs); err != nil {
		return nil, false, err
	}
	return prefs, true, nil
}

// Update 校验并套用传入字段
// 未知字段名与非法枚举值一律拒绝
func (s *preferencesService) Update(clerkID string, fields map[string]interface{}) (*model.UserPreferences, bool, error) {
	if len(fields) == 0 {
		return nil, false, &ValidationError{msg: "No data provided."}
	}

	if err := validatePreferenceFields(fields); err != nil {
		return nil, false, err
	}

	created := false
	prefs, err := s.repo.GetByClerkID(clerkID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		prefs = model.DefaultPreferences(clerkID)
		created = true
	}

	if v, ok := fields["theme"]; ok {
		prefs.Theme = v.(string)
	}
	if v, ok := fields["language"]; ok {
		prefs.Language = v.(string)
	}
	if v, ok := fields["auto_save"]; ok {
		prefs.AutoSave = truthy(v)
	}
	if v, ok := fields["two_factor_enabled"]; ok {
		prefs.TwoFactorEnabled = truthy(v)
	}

	if created {
		err = s.repo.Create(prefs)
	} else {
		err = s.repo.Update(prefs)
	}
	if err != nil {
		return nil, false, err
	}
	return prefs, created, nil
}

// DeleteAccount 注销账号数据
func (s *preferencesService) DeleteAccount(clerkID string) error {
	return s.account.DeleteAccount(clerkID)
}

// validatePreferenceFields 校验字段名与枚举取值
func validatePreferenceFields(fields map[string]interface{}) error {
	var unknown []string
	for name := range fields {
		if !preferenceFields[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ValidationError{msg: "Invalid fields: " + strings.Join(unknown, ", ")}
	}

	if v, ok := fields["theme"]; ok {
		theme, isString := v.(string)
		if !isString || !contains(model.ValidThemes, theme) {
			return &ValidationError{msg: fmt.Sprintf("Invalid theme value. Allowed: %s", strings.Join(model.ValidThemes, ", "))}
		}
	}

	if v, ok := fields["language"]; ok {
		lang, isString := v.(string)
		if !isString || !contains(model.ValidLanguages, lang) {
			return &ValidationError{msg: fmt.Sprintf("Invalid language value. Allowed: %s", strings.Join(model.ValidLanguages, ", "))}
		}
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// truthy JSON 布尔字段的宽松判定，兼容 1/0 与字符串形式的遗留客户端
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t == "true" || t == "1"
	default:
		return false
	}
}
