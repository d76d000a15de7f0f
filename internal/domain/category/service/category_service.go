package service

import (
	"regexp"
	"strings"

	"blog_platform_api/internal/domain/category/model"
	"blog_platform_api/internal/domain/category/repository"
	"blog_platform_api/pkg/sanitize"
)

// CategoryService 分类服务接口
type CategoryService interface {
	Create(name, description string) error
	List() ([]model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// Create 创建分类，slug 由名称派生
func (s *categoryService) Create(name, description string) error {
	name = sanitize.Plain(name)
	category := &model.Category{
		Name:        name,
		Slug:        Slugify(name),
		Description: sanitize.Plain(description),
	}
	return s.repo.Create(category)
}

// List 全部分类，字母序
func (s *categoryService) List() ([]model.Category, error) {
	return s.repo.GetAll()
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 将名称归一化为 URL slug
func Slugify(name string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
