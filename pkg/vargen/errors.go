package vargen

import (
	"errors"
	"fmt"
)

// 引擎的错误分类。调用方可用 errors.Is 区分处理。
var (
	// ErrMalformedTemplate 模板括号不配对。
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrEmptyChoiceGroup 备选组没有任何备选项。
	ErrEmptyChoiceGroup = errors.New("choice group has no alternatives")

	// ErrSpaceTooLarge 组合总数超出 int64 或配置的上限。
	ErrSpaceTooLarge = errors.New("combination space too large")

	// ErrInvalidConfig 展开参数非法（如 BatchSize < 0）。
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError 携带出错位置的解析错误。
//
// Pos 为模板文本中的字节偏移：未闭合的组指向其 '['，
// 多余的 ']' 指向该字符本身。
type ParseError struct {
	Pos int
	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vargen: %v at offset %d", e.err, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.err }
