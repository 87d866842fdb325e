package vargen

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ═══════════════════════════════════════════════════════════════════════════
// 输出端
// ═══════════════════════════════════════════════════════════════════════════

// Sink 把批次结果写入目标，分隔符只出现在相邻组合之间。
//
// 追加模式下若目标文件已有内容，首个组合前会先写一个
// 分隔符，作为既有内容与本次结果的边界；末尾不写分隔符。
// 每批写完后刷新缓冲，持有的内存与单批大小成正比。
//
// Sink 不做并发保护：[Template.Expand] 保证 emit 在单个
// goroutine 中按序调用，写入方始终只有一个。
type Sink struct {
	w      *bufio.Writer
	closer io.Closer
	sep    string
	dirty  bool // 目标已有内容（本次写入的或追加前既有的）
}

// NewFileSink 打开 path 作为输出目标。
//
// appendMode 为 true 时追加到既有内容之后，否则先清空。
func NewFileSink(path string, appendMode bool, separator string) (*Sink, error) {
	flag := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flag, 0o644) //nolint:gosec // path is from user config
	if err != nil {
		return nil, fmt.Errorf("vargen: open output: %w", err)
	}

	dirty := false
	if appendMode {
		if info, err := f.Stat(); err == nil && info.Size() > 0 {
			dirty = true
		}
	}

	return &Sink{w: bufio.NewWriter(f), closer: f, sep: separator, dirty: dirty}, nil
}

// NewWriterSink 把 w 包装为输出目标（标准输出、测试缓冲等）。
func NewWriterSink(w io.Writer, separator string) *Sink {
	return &Sink{w: bufio.NewWriter(w), sep: separator}
}

// WriteBatch 写入一批组合并刷新缓冲。
func (s *Sink) WriteBatch(lines []string) error {
	for _, line := range lines {
		if s.dirty {
			if _, err := s.w.WriteString(s.sep); err != nil {
				return fmt.Errorf("vargen: write output: %w", err)
			}
		}
		if _, err := s.w.WriteString(line); err != nil {
			return fmt.Errorf("vargen: write output: %w", err)
		}
		s.dirty = true
	}

	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("vargen: flush output: %w", err)
	}

	return nil
}

// Close 刷新缓冲并关闭底层文件（如果有）。
func (s *Sink) Close() error {
	flushErr := s.w.Flush()
	if s.closer != nil {
		if err := s.closer.Close(); err != nil && flushErr == nil {
			flushErr = err
		}
	}
	if flushErr != nil {
		return fmt.Errorf("vargen: close output: %w", flushErr)
	}

	return nil
}
