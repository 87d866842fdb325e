package vargen

import (
	"fmt"
	"math"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 组合空间：索引 → 输出字符串
// ═══════════════════════════════════════════════════════════════════════════

// Shape 返回各备选组的备选数，按声明顺序。
//
// 没有备选组的模板返回空切片（组合总数为 1）。
func (t *Template) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)

	return out
}

// Total 返回组合总数 n_1 * n_2 * ... * n_k。
//
// 乘积超出 int64 时返回 [ErrSpaceTooLarge]。
func (t *Template) Total() (int64, error) {
	return t.Count(math.MaxInt64)
}

// Count 返回组合总数，超过 limit 时返回 [ErrSpaceTooLarge]。
//
// limit <= 0 等价于 math.MaxInt64。乘积全程以整数溢出安全的
// 方式累计，不会回绕。
func (t *Template) Count(limit int64) (int64, error) {
	if limit <= 0 {
		limit = math.MaxInt64
	}

	total := int64(1)
	for _, n := range t.shape {
		if total > limit/int64(n) {
			return 0, fmt.Errorf("vargen: %w: exceeds %d", ErrSpaceTooLarge, limit)
		}
		total *= int64(n)
	}

	return total, nil
}

// At 将组合索引解码为输出字符串。
//
// 索引按里程表序枚举：最后一个备选组变化最快。
// 即 "x[1|2]y[3|4]" 的索引 0..3 依次产出
// "x1y3", "x1y4", "x2y3", "x2y4"。
//
// 调用方需保证 0 <= i < Total()；解码为纯整数运算，
// 不读写任何共享状态，可并发调用。
func (t *Template) At(i int64) string {
	// 逆序做混合进制分解：末组为最低位
	choices := make([]int, len(t.shape))
	for j := len(t.shape) - 1; j >= 0; j-- {
		n := int64(t.shape[j])
		choices[j] = int(i % n)
		i /= n
	}

	var b strings.Builder
	g := 0
	for _, seg := range t.segments {
		if seg.alts == nil {
			b.WriteString(seg.text)

			continue
		}
		b.WriteString(seg.alts[choices[g]])
		g++
	}

	return b.String()
}
