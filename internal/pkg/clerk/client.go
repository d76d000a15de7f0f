package clerk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"blog_platform_api/internal/pkg/config"
	"blog_platform_api/pkg/logger"

	"go.uber.org/zap"
)

// ErrSessionInvalid token 验证未通过
var ErrSessionInvalid = errors.New("session invalid")

// Session 身份服务验证 token 后返回的会话
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// EmailAddress 身份服务的邮箱记录
type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// User 身份服务返回的用户属性
// 用户详情获取失败时会降级为只含 ID 的最小身份
type User struct {
	ID             string         `json:"id"`
	Username       string         `json:"username"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	ImageURL       string         `json:"image_url"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
}

// DisplayName 按 姓名 → 用户名 → 邮箱 的顺序取展示名
func (u *User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.Username != "" {
		return u.Username
	}
	return u.PrimaryEmail()
}

// AuthorName 同 DisplayName，但兜底为 Anonymous，用于文章署名
func (u *User) AuthorName() string {
	if name := u.DisplayName(); name != "" {
		return name
	}
	return "Anonymous"
}

// PrimaryEmail 第一个邮箱地址，没有则为空串
func (u *User) PrimaryEmail() string {
	if len(u.EmailAddresses) > 0 {
		return u.EmailAddresses[0].EmailAddress
	}
	return ""
}

// Client 外部身份服务客户端，进程内构建一次后复用
type Client struct {
	apiKey    string
	baseURL   string
	http      *http.Client
	devBypass bool
}

// NewClient 创建身份服务客户端，超时固定由配置给出
func NewClient(cfg config.ClerkConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		http:      &http.Client{Timeout: timeout},
		devBypass: cfg.DevBypass,
	}
}

// VerifySession 请求身份服务验证 token，返回会话
func (c *Client) VerifySession(ctx context.Context, token string) (*Session, error) {
	if s, ok := c.bypassSession(token); ok {
		return s, nil
	}

	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sessions/verify", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrSessionInvalid
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	if session.UserID == "" {
		return nil, ErrSessionInvalid
	}
	return &session, nil
}

// GetUser 按会话中的 user_id 拉取完整用户属性
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+userID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Auth 单个请求生命周期内的身份视图
// 缓存随请求创建和丢弃，避免跨请求的身份泄露
type Auth struct {
	client   *Client
	token    string
	sessions map[string]*Session
	users    map[string]*User
}

// NewAuth 从请求头提取 Bearer 凭证，构建请求级身份视图
// 头名与 scheme 均不区分大小写
func NewAuth(client *Client, header http.Header) *Auth {
	return &Auth{
		client:   client,
		token:    ExtractBearer(header),
		sessions: make(map[string]*Session),
		users:    make(map[string]*User),
	}
}

// Session 验证当前凭证，结果按 token 缓存
func (a *Auth) Session(ctx context.Context) (*Session, error) {
	if a.token == "" {
		return nil, ErrSessionInvalid
	}
	if s, ok := a.sessions[a.token]; ok {
		if s == nil {
			return nil, ErrSessionInvalid
		}
		return s, nil
	}

	s, err := a.client.VerifySession(ctx, a.token)
	if err != nil {
		// 负结果同样缓存，同一请求内不再重复外呼
		a.sessions[a.token] = nil
		return nil, err
	}
	a.sessions[a.token] = s
	return s, nil
}

// IsAuthenticated 当前请求是否携带有效凭证
func (a *Auth) IsAuthenticated(ctx context.Context) bool {
	_, err := a.Session(ctx)
	return err == nil
}

// CurrentUser 解析当前用户的完整属性
// 用户详情获取失败时降级返回只含 user_id 的最小身份
func (a *Auth) CurrentUser(ctx context.Context) (*User, bool) {
	session, err := a.Session(ctx)
	if err != nil {
		return nil, false
	}

	if u, ok := a.users[session.UserID]; ok {
		return u, true
	}

	user, err := a.client.GetUser(ctx, session.UserID)
	if err != nil {
		if logger.Log != nil {
			logger.Log.Warn("identity user lookup failed, degrading to session identity",
				zap.String("user_id", session.UserID), zap.Error(err))
		}
		user = &User{ID: session.UserID}
	}
	a.users[session.UserID] = user
	return user, true
}
