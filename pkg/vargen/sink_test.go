package vargen_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-vargen/pkg/vargen"
)

func writeBatches(t *testing.T, sink *vargen.Sink, batches ...[]string) {
	t.Helper()
	for _, b := range batches {
		require.NoError(t, sink.WriteBatch(b))
	}
	require.NoError(t, sink.Close())
}

func TestFileSink_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o600))

	sink, err := vargen.NewFileSink(path, false, "\n")
	require.NoError(t, err)
	writeBatches(t, sink, []string{"a", "b"}, []string{"c"})

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	// 分隔符只在相邻组合之间，批次边界不特殊，末尾无分隔符
	assert.Equal(t, "a\nb\nc", string(content))
}

func TestFileSink_AppendToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("PRE"), 0o600))

	sink, err := vargen.NewFileSink(path, true, "-")
	require.NoError(t, err)
	writeBatches(t, sink, []string{"x", "y"})

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	// 既有内容与新内容之间恰好一个分隔符
	assert.Equal(t, "PRE-x-y", string(content))
}

func TestFileSink_AppendToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	sink, err := vargen.NewFileSink(path, true, "-")
	require.NoError(t, err)
	writeBatches(t, sink, []string{"x", "y"})

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x-y", string(content), "appending to an empty target must not lead with a separator")
}

func TestFileSink_OpenFailure(t *testing.T) {
	_, err := vargen.NewFileSink(filepath.Join(t.TempDir(), "missing", "out.txt"), false, "\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := vargen.NewWriterSink(&buf, ", ")
	writeBatches(t, sink, []string{"a", "b"}, []string{}, []string{"c"})

	assert.Equal(t, "a, b, c", buf.String())
}
