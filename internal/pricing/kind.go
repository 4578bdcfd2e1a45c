package pricing

import (
	"fmt"
	"strings"
)

// Kind 折扣类型（封闭枚举，非法值无法表示）
type Kind uint8

const (
	// KindFixed 固定金额折扣
	KindFixed Kind = iota
	// KindPercent 百分比折扣
	KindPercent
)

// ParseKind 解析存储层的折扣类型字符串
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return KindFixed, nil
	case "percent":
		return KindPercent, nil
	default:
		return KindFixed, fmt.Errorf("unknown discount kind: %q", s)
	}
}

// String 返回折扣类型的存储层表示
func (k Kind) String() string {
	if k == KindPercent {
		return "percent"
	}
	return "fixed"
}
