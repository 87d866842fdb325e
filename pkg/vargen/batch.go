package vargen

// span 一个批次覆盖的半开索引区间 [start, end)。
type span struct {
	start, end int64
}

// spans 将 [0, total) 切分为连续、不重叠的批次。
//
// 每批最多 size 个索引，最后一批可能不足 size。
// 调用方保证 total >= 0 且 size > 0。
func spans(total, size int64) []span {
	out := make([]span, 0, (total+size-1)/size)
	for start := int64(0); start < total; start += size {
		end := min(start+size, total)
		out = append(out, span{start: start, end: end})
	}

	return out
}
