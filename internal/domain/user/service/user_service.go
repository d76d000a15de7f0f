package service

import (
	"errors"

	"blog_platform_api/internal/domain/user/model"
	"blog_platform_api/internal/domain/user/repository"
	"blog_platform_api/pkg/sanitize"
	"blog_platform_api/pkg/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 遗留本地账号路径的业务错误
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrLoginFailed   = errors.New("invalid username or password")
)

// TokenConfig 遗留登录签发 token 所需配置
type TokenConfig struct {
	Secret      string
	ExpireHours int64
}

// UserService 遗留本地账号服务接口
type UserService interface {
	Register(username, password, email string) error
	Login(username, password string) (*model.User, string, error)
}

type userService struct {
	repo  repository.UserRepository
	token TokenConfig
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, token TokenConfig) UserService {
	return &userService{repo: repo, token: token}
}

// Register 注册本地账号，用户名与邮箱均需唯一
func (s *userService) Register(username, password, email string) error {
	taken, err := s.repo.UsernameExists(username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	taken, err = s.repo.EmailExists(email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: sanitize.Plain(username),
		Password: string(hash),
		Email:    sanitize.Plain(email),
	}
	return s.repo.Create(user)
}

// Login 校验本地凭证并签发 token
func (s *userService) Login(username, password string) (*model.User, string, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrLoginFailed
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrLoginFailed
	}

	token, err := utils.GenerateToken(user.ID, user.Username, s.token.Secret, s.token.ExpireHours)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
