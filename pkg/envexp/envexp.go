package envexp

import (
	"fmt"
	"os"
	"strings"
)

// snapshot 生成当前环境变量的一次性快照，供本次展开使用。
func snapshot() map[string]string {
	vars := make(map[string]string)
	for _, env := range os.Environ() {
		if name, val, ok := strings.Cut(env, "="); ok {
			vars[name] = val
		}
	}

	return vars
}

func isNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

// splitExpr 把 "${...}" 的内部拆成 变量名 / 操作符 / word。
//
// 支持的操作符仅 ":-" 与 ":?"；无法识别的表达式返回 ok=false，
// 调用方保留原样。
func splitExpr(expr string) (name, op, word string, ok bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return "", "", "", false
	}

	i := 1
	for i < len(expr) && isNameChar(expr[i]) {
		i++
	}

	name = expr[:i]
	rest := expr[i:]
	if rest == "" {
		return name, "", "", true
	}
	if len(rest) >= 2 && rest[0] == ':' && (rest[1] == '-' || rest[1] == '?') {
		return name, rest[:2], rest[2:], true
	}

	return "", "", "", false
}

func evalExpr(expr string, env map[string]string) (string, bool, error) {
	name, op, word, ok := splitExpr(expr)
	if !ok {
		return "", false, nil
	}

	val, isSet := env[name]
	switch op {
	case "":
		if isSet {
			return val, true, nil
		}

		return "", true, nil
	case ":-": // 未设置或为空时回退，word 本身可再含 ${...}
		if !isSet || val == "" {
			expanded, err := expand(word, env)
			if err != nil {
				return "", false, err
			}

			return expanded, true, nil
		}

		return val, true, nil
	case ":?": // 必填校验
		if !isSet || val == "" {
			if word == "" {
				return "", false, fmt.Errorf("envexp: %s: parameter null or not set", name)
			}

			return "", false, fmt.Errorf("envexp: %s: %s", name, word)
		}

		return val, true, nil
	}

	return "", false, nil
}

func expand(text string, env map[string]string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != '$' || i+1 >= len(text) {
			buf.WriteByte(ch)
			i++

			continue
		}

		switch text[i+1] {
		case '$': // "$$" 为字面 '$'
			buf.WriteByte('$')
			i += 2
		case '{':
			end := matchingBrace(text, i+2)
			if end == -1 {
				buf.WriteByte(ch)
				i++

				continue
			}
			expanded, ok, err := evalExpr(text[i+2:end], env)
			if err != nil {
				return "", err
			}
			if ok {
				buf.WriteString(expanded)
			} else {
				buf.WriteString(text[i : end+1])
			}
			i = end + 1
		default:
			buf.WriteByte(ch)
			i++
		}
	}

	return buf.String(), nil
}

// matchingBrace 定位与当前 "${" 配对的 '}'，跳过嵌套的 "${...}"。
func matchingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		if text[i] == '$' && i+1 < len(text) && text[i+1] == '{' {
			depth++
			i++

			continue
		}
		if text[i] == '}' {
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// Expand 对输入字符串执行环境变量展开。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置展开为空串
//   - ${VAR:-default} - 未设置或为空时使用默认值，可嵌套
//   - ${VAR:?msg} - 必填校验，未设置或为空时报错
//   - $$ - 字面 '$'
//
// 不解析裸 $VAR；无法识别的 ${...} 表达式保持原样。
// 仅在必填校验失败时返回 error。
func Expand(text string) (string, error) {
	return expand(text, snapshot())
}
