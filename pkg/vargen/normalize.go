package vargen

import "strings"

// Squeeze 把连续的空格折叠为一个，并去除首尾空白。
//
// 备选项为空串时渲染结果可能出现 "a  b" 或 "a !" 这类
// 多余空格，Squeeze 用于事后清理。只折叠空格（U+0020），
// 制表符等其他空白原样保留，首尾按 [strings.TrimSpace] 处理。
func Squeeze(s string) string {
	if !strings.Contains(s, "  ") {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteByte(ch)
	}

	return strings.TrimSpace(b.String())
}
