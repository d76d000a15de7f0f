package clerk

import (
	"net/http"
	"strings"
)

// ExtractBearer 从 Authorization 头中取出 Bearer token
// scheme 不区分大小写，头名由 http.Header 自身规范化
func ExtractBearer(header http.Header) string {
	authHeader := header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
