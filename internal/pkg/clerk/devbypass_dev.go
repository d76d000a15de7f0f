//go:build devauth

package clerk

import (
	"github.com/golang-jwt/jwt/v5"
)

// bypassSession 开发构建下的验证旁路：配置开关打开时，
// 不外呼身份服务，直接从未签名 token 的 claims 合成会话
func (c *Client) bypassSession(token string) (*Session, bool) {
	if !c.devBypass || token == "" {
		return nil, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		userID, _ = claims["sub"].(string)
	}
	if userID == "" {
		return nil, false
	}

	return &Session{UserID: userID, Status: "active"}, true
}
