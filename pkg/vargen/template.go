package vargen

import (
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 模板解析
// ═══════════════════════════════════════════════════════════════════════════

// segment 模板的一个片段：字面文本或备选组。
//
// alts 非 nil 表示备选组；否则为字面文本。
type segment struct {
	text string
	alts []string
}

// Template 解析后的模板。
//
// 片段序列与形状在解析时确定，之后不可变，
// 可被任意多个 goroutine 并发读取。
type Template struct {
	segments []segment
	shape    []int // 各备选组的备选数，按声明顺序
}

// Parse 将模板文本解析为片段序列。
//
// 语法：
//   - [a|b|c] 为备选组，'|' 分隔备选项
//   - 组外的 '|' 是普通字符
//   - 组内不支持嵌套：组内出现的 '[' 按字面处理，仅 ']' 结束该组
//   - 转义：\[ \] \| \\ 还原字符本身；其余 \x 原样保留（含反斜杠）
//
// 括号不配对返回包装 [ErrMalformedTemplate] 的 [*ParseError]。
func Parse(text string) (*Template, error) {
	var segs []segment
	var shape []int
	var lit, alt strings.Builder
	var alts []string
	inGroup := false
	groupPos := 0

	for i := 0; i < len(text); i++ {
		ch := text[i]

		// 转义优先于一切结构字符
		if ch == '\\' && i+1 < len(text) {
			switch next := text[i+1]; next {
			case '[', ']', '|', '\\':
				if inGroup {
					alt.WriteByte(next)
				} else {
					lit.WriteByte(next)
				}
				i++

				continue
			}
		}

		if inGroup {
			switch ch {
			case ']':
				alts = append(alts, alt.String())
				alt.Reset()
				if len(alts) == 0 {
					return nil, &ParseError{Pos: groupPos, err: ErrEmptyChoiceGroup}
				}
				segs = append(segs, segment{alts: alts})
				shape = append(shape, len(alts))
				alts = nil
				inGroup = false
			case '|':
				alts = append(alts, alt.String())
				alt.Reset()
			default:
				// 扁平分组：组内的 '[' 不开启新组
				alt.WriteByte(ch)
			}

			continue
		}

		switch ch {
		case '[':
			if lit.Len() > 0 {
				segs = append(segs, segment{text: lit.String()})
				lit.Reset()
			}
			inGroup = true
			groupPos = i
		case ']':
			return nil, &ParseError{Pos: i, err: ErrMalformedTemplate}
		default:
			lit.WriteByte(ch)
		}
	}

	if inGroup {
		return nil, &ParseError{Pos: groupPos, err: ErrMalformedTemplate}
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{text: lit.String()})
	}

	return &Template{segments: segs, shape: shape}, nil
}

// Escape 转义文本中的结构字符，使其在模板中按字面出现。
//
// 与 [Parse] 的转义规则互逆：Parse("a" + Escape(s) + "b")
// 渲染结果中 s 原样出现。
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '[', ']', '|', '\\':
			b.WriteByte('\\')
			b.WriteByte(ch)
		default:
			b.WriteByte(ch)
		}
	}

	return b.String()
}
