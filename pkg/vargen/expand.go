package vargen

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ═══════════════════════════════════════════════════════════════════════════
// 批次并行生成 + 按序输出
// ═══════════════════════════════════════════════════════════════════════════

// 默认值。与配置层的 DefaultConfig 保持一致。
const (
	// DefaultBatchSize 每批组合数的默认值。
	DefaultBatchSize int64 = 10

	// DefaultMaxTotal 单个模板组合总数的默认上限。
	DefaultMaxTotal int64 = 10_000_000
)

// Options 展开参数。零值字段使用默认值。
type Options struct {
	// BatchSize 每批组合数，决定内存峰值（0 = DefaultBatchSize）。
	BatchSize int64

	// Workers 同时在算的批次上限（0 = GOMAXPROCS）。
	Workers int

	// MaxTotal 组合总数上限，超出立即失败（0 = DefaultMaxTotal）。
	MaxTotal int64
}

func (o Options) normalize() (Options, error) {
	if o.BatchSize < 0 || o.Workers < 0 || o.MaxTotal < 0 {
		return o, fmt.Errorf("vargen: %w: batch size, workers and max total must be non-negative", ErrInvalidConfig)
	}
	if o.BatchSize == 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MaxTotal == 0 {
		o.MaxTotal = DefaultMaxTotal
	}

	return o, nil
}

// Expand 枚举模板的全部组合，按批次升序交给 emit。
//
// 批次由多个 worker 并行渲染，但 emit 严格按索引升序、
// 在单个 goroutine 中被调用；内存峰值与 BatchSize 和
// Workers 成正比，与组合总数无关。
//
// 组合总数超过 MaxTotal 时在任何批次开始前返回
// [ErrSpaceTooLarge]。emit 返回错误或 ctx 取消时，
// 未开始的批次被放弃，Expand 返回首个错误；
// 已交给 emit 的批次不受影响。
func (t *Template) Expand(ctx context.Context, opts Options, emit func(lines []string) error) error {
	opts, err := opts.normalize()
	if err != nil {
		return err
	}

	total, err := t.Count(opts.MaxTotal)
	if err != nil {
		return err
	}

	return runOrdered(ctx, spans(total, opts.BatchSize), opts.Workers, t.renderSpan, emit)
}

// renderSpan 渲染一个批次的全部组合。
//
// 纯函数：只读不可变的模板，批次之间无共享可变状态。
func (t *Template) renderSpan(ctx context.Context, s span) ([]string, error) {
	out := make([]string, 0, s.end-s.start)
	for i := s.start; i < s.end; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, t.At(i))
	}

	return out, nil
}

// runOrdered 并行执行各批次并按提交顺序输出。
//
// 提交者依次为每个批次申请一个单槽结果通道并放入窗口；
// 窗口容量即并发上限，消费者按窗口顺序等待结果，
// 因此完成顺序乱序不影响输出顺序。任一批次失败时
// errgroup 取消派生 ctx，提交者与消费者随之退出。
func runOrdered(
	ctx context.Context,
	batches []span,
	workers int,
	render func(context.Context, span) ([]string, error),
	emit func([]string) error,
) error {
	g, gctx := errgroup.WithContext(ctx)
	window := make(chan chan []string, workers)

	// 提交者
	g.Go(func() error {
		defer close(window)
		for _, s := range batches {
			slot := make(chan []string, 1)
			select {
			case window <- slot:
			case <-gctx.Done():
				return gctx.Err()
			}
			g.Go(func() error {
				lines, err := render(gctx, s)
				if err != nil {
					return err
				}
				slot <- lines

				return nil
			})
		}

		return nil
	})

	// 消费者：按提交顺序输出
	g.Go(func() error {
		for slot := range window {
			select {
			case lines := <-slot:
				if err := emit(lines); err != nil {
					return err
				}
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return nil
	})

	return g.Wait()
}
