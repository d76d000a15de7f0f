package utils

import (
	"encoding/json"
	"strings"
)

// DecodeStringList 解码存储为文本的字符串数组
// 优先按 JSON 数组解析，失败则退回到逗号分隔的遗留格式
func DecodeStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}

	// 遗留数据：逗号分隔
	parts := strings.Split(raw, ",")
	list = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// EncodeStringList 统一按 JSON 数组编码写库
func EncodeStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(b)
}
