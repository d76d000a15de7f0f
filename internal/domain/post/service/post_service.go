package service

import (
	"encoding/json"

	"blog_platform_api/internal/domain/post/model"
	"blog_platform_api/internal/domain/post/repository"
	"blog_platform_api/pkg/sanitize"
	"blog_platform_api/pkg/utils"
)

// CreateInput 创建文章入参，tags 允许是数组或遗留的逗号分隔字符串
type CreateInput struct {
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Excerpt  string          `json:"excerpt"`
	Category string          `json:"category"`
	Tags     json.RawMessage `json:"tags"`
}

// UpdateInput 部分更新入参，nil 字段保持原值
type UpdateInput struct {
	ID       uint            `json:"id"`
	Title    *string         `json:"title"`
	Content  *string         `json:"content"`
	Excerpt  *string         `json:"excerpt"`
	Author   *string         `json:"author"`
	Category *string         `json:"category"`
	Tags     json.RawMessage `json:"tags"`
}

// PostService 文章服务接口
type PostService interface {
	Create(input CreateInput, author string) error
	List() ([]model.PostResponse, error)
	Get(id uint) (*model.PostResponse, error)
	Update(input UpdateInput) error
	Delete(id uint) error
}

// postService 实现
type postService struct {
	repo repository.PostRepository
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo}
}

// Create 创建文章，未提供摘要时从正文派生
func (s *postService) Create(input CreateInput, author string) error {
	excerpt := input.Excerpt
	if excerpt == "" {
		excerpt = deriveExcerpt(input.Content)
	}

	post := &model.Post{
		Title:    sanitize.Plain(input.Title),
		Content:  sanitize.Plain(input.Content),
		Excerpt:  sanitize.Plain(excerpt),
		Author:   sanitize.Plain(author),
		Category: sanitize.Plain(input.Category),
		Tags:     encodeTags(input.Tags),
	}
	return s.repo.Create(post)
}

// List 全部文章，最新在前
func (s *postService) List() ([]model.PostResponse, error) {
	posts, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	records := make([]model.PostResponse, 0, len(posts))
	for i := range posts {
		records = append(records, posts[i].ToResponse())
	}
	return records, nil
}

// Get 单篇文章
func (s *postService) Get(id uint) (*model.PostResponse, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := post.ToResponse()
	return &resp, nil
}

// Update 部分更新，只有显式提供的字段进入 SET 子句
func (s *postService) Update(input UpdateInput) error {
	fields := make(map[string]interface{})

	if input.Title != nil {
		fields["title"] = sanitize.Plain(*input.Title)
	}
	if input.Content != nil {
		fields["content"] = sanitize.Plain(*input.Content)
	}
	if input.Excerpt != nil {
		fields["excerpt"] = sanitize.Plain(*input.Excerpt)
	}
	if input.Author != nil {
		fields["author"] = sanitize.Plain(*input.Author)
	}
	if input.Category != nil {
		fields["category"] = sanitize.Plain(*input.Category)
	}
	if len(input.Tags) > 0 && string(input.Tags) != "null" {
		fields["tags"] = encodeTags(input.Tags)
	}

	return s.repo.Update(input.ID, fields)
}

// Delete 删除文章
func (s *postService) Delete(id uint) error {
	return s.repo.Delete(id)
}

// deriveExcerpt 摘要缺省时取正文前100个字符
func deriveExcerpt(content string) string {
	plain := []rune(sanitize.StripTags(content))
	if len(plain) > 100 {
		plain = plain[:100]
	}
	return string(plain) + "..."
}

// encodeTags 归一化 tags 入参：数组统一 JSON 编码，
// 字符串按遗留格式原样保留，其余情形存空
func encodeTags(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return utils.EncodeStringList(list)
	}

	var legacy string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return legacy
	}

	return ""
}
