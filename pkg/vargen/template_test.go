package vargen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-vargen/pkg/vargen"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		wantShape []int
		wantFirst string // At(0)
	}{
		{
			name:      "plain text",
			template:  "plain text",
			wantShape: []int{},
			wantFirst: "plain text",
		},
		{
			name:      "empty template",
			template:  "",
			wantShape: []int{},
			wantFirst: "",
		},
		{
			name:      "single group",
			template:  "a[b|c]d",
			wantShape: []int{2},
			wantFirst: "abd",
		},
		{
			name:      "two groups",
			template:  "x[1|2]y[3|4]",
			wantShape: []int{2, 2},
			wantFirst: "x1y3",
		},
		{
			name:      "pipe outside group is literal",
			template:  "a|b",
			wantShape: []int{},
			wantFirst: "a|b",
		},
		{
			name:      "empty group degenerates to one empty alternative",
			template:  "a[]b",
			wantShape: []int{1},
			wantFirst: "ab",
		},
		{
			name:      "group of two empty alternatives",
			template:  "[|]",
			wantShape: []int{2},
			wantFirst: "",
		},
		{
			name:      "escaped brackets are literal",
			template:  `a\[b\|c\]d`,
			wantShape: []int{},
			wantFirst: "a[b|c]d",
		},
		{
			name:      "escaped pipe inside group",
			template:  `[\||x]`,
			wantShape: []int{2},
			wantFirst: "|",
		},
		{
			name:      "escaped backslash",
			template:  `a\\b`,
			wantShape: []int{},
			wantFirst: `a\b`,
		},
		{
			name:      "unknown escape kept verbatim",
			template:  `a\nb`,
			wantShape: []int{},
			wantFirst: `a\nb`,
		},
		{
			name:      "trailing backslash kept verbatim",
			template:  `ab\`,
			wantShape: []int{},
			wantFirst: `ab\`,
		},
		{
			// 扁平分组：组内的 '[' 不开启新组，按字面保留
			name:      "no nesting: bracket inside group is literal",
			template:  "a[b[c|d]e",
			wantShape: []int{2},
			wantFirst: "ab[ce",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := vargen.Parse(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.wantShape, tmpl.Shape())
			assert.Equal(t, tt.wantFirst, tmpl.At(0))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  error
		wantPos  int
	}{
		{
			name:     "unclosed bracket",
			template: "[a|b",
			wantErr:  vargen.ErrMalformedTemplate,
			wantPos:  0,
		},
		{
			name:     "unclosed bracket mid-text",
			template: "ab[c|d",
			wantErr:  vargen.ErrMalformedTemplate,
			wantPos:  2,
		},
		{
			name:     "stray closing bracket",
			template: "a]b",
			wantErr:  vargen.ErrMalformedTemplate,
			wantPos:  1,
		},
		{
			// 嵌套写法在扁平分组下是非法的：
			// 第二个组结束后顶层出现多余的 ']'
			name:     "nested style rejected under flat grouping",
			template: "Good [[morning|evening], [John|Jane]| day]!",
			wantErr:  vargen.ErrMalformedTemplate,
			wantPos:  41,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vargen.Parse(tt.template)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var parseErr *vargen.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantPos, parseErr.Pos)
		})
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"[a|b]",
		`back\slash`,
		"][|][",
		"",
	}

	for _, raw := range inputs {
		tmpl, err := vargen.Parse("x" + vargen.Escape(raw) + "y")
		require.NoError(t, err, "escaped input %q must parse", raw)

		total, err := tmpl.Total()
		require.NoError(t, err)
		require.Equal(t, int64(1), total, "escaped input must stay literal")
		assert.Equal(t, "x"+raw+"y", tmpl.At(0))
	}
}
