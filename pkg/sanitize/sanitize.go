package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Plain 清洗纯文本字段：先剥离 HTML 标签，再转义实体
// 仅用于纯文本列，结构化 JSON 列原样写入
func Plain(s string) string {
	stripped := tagPattern.ReplaceAllString(s, "")
	return html.EscapeString(strings.TrimSpace(stripped))
}

// StripTags 只剥离标签，不转义，用于生成摘要
func StripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
