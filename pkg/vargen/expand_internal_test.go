package vargen

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunOrdered_SlowFirstBatch 人为拖慢首个批次，
// 输出顺序仍须与提交顺序一致。
func TestRunOrdered_SlowFirstBatch(t *testing.T) {
	batches := spans(8, 2)

	render := func(ctx context.Context, s span) ([]string, error) {
		if s.start == 0 {
			time.Sleep(50 * time.Millisecond)
		}

		return []string{fmt.Sprintf("batch-%d", s.start)}, nil
	}

	var got []string
	err := runOrdered(context.Background(), batches, 4, render, func(lines []string) error {
		got = append(got, lines...)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"batch-0", "batch-2", "batch-4", "batch-6"}, got)
}

// TestRunOrdered_WorkerFailure worker 失败后整体失败，
// 失败批次之后不得再有输出。
func TestRunOrdered_WorkerFailure(t *testing.T) {
	batches := spans(10, 1)
	renderErr := errors.New("render failed")

	render := func(ctx context.Context, s span) ([]string, error) {
		if s.start == 2 {
			return nil, renderErr
		}

		return []string{fmt.Sprintf("batch-%d", s.start)}, nil
	}

	var got []string
	err := runOrdered(context.Background(), batches, 2, render, func(lines []string) error {
		got = append(got, lines...)

		return nil
	})
	require.Error(t, err)

	for _, line := range got {
		assert.NotEqual(t, "batch-2", line)
	}
	// 已输出的前缀必须保持升序
	assert.Subset(t, []string{"batch-0", "batch-1"}, got)
}

func TestRunOrdered_NoBatches(t *testing.T) {
	err := runOrdered(context.Background(), nil, 2,
		func(context.Context, span) ([]string, error) { return nil, nil },
		func([]string) error { return errors.New("emit must not be called") },
	)
	assert.NoError(t, err)
}
