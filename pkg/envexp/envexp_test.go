package envexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-vargen/pkg/envexp"
)

func TestExpand(t *testing.T) {
	t.Setenv("ENVEXP_SET", "set-value")
	t.Setenv("ENVEXP_EMPTY", "")

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "basic expansion",
			template: `prefix-${ENVEXP_SET}-suffix`,
			want:     "prefix-set-value-suffix",
		},
		{
			name:     "missing expands to empty",
			template: `x=${ENVEXP_MISSING}`,
			want:     "x=",
		},
		{
			name:     "fallback treats empty as unset",
			template: `${ENVEXP_EMPTY:-fallback}`,
			want:     "fallback",
		},
		{
			name:     "fallback unused when set",
			template: `${ENVEXP_SET:-fallback}`,
			want:     "set-value",
		},
		{
			name:     "nested fallback",
			template: `${ENVEXP_MISSING:-${ENVEXP_SET}}`,
			want:     "set-value",
		},
		{
			name:     "literal dollar",
			template: `$$${ENVEXP_SET}`,
			want:     "$set-value",
		},
		{
			name:     "bare dollar untouched",
			template: `cost: 5$ and $VAR`,
			want:     "cost: 5$ and $VAR",
		},
		{
			name:     "unrecognized expression kept",
			template: `${1NOT_A_NAME}`,
			want:     "${1NOT_A_NAME}",
		},
		{
			name:     "unterminated brace kept",
			template: `${ENVEXP_SET`,
			want:     "${ENVEXP_SET",
		},
		{
			name:     "required var triggers error",
			template: `${ENVEXP_MISSING:?missing}`,
			wantErr:  true,
			errMsg:   "missing",
		},
		{
			name:     "required var passes when set",
			template: `${ENVEXP_SET:?must be set}`,
			want:     "set-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := envexp.Expand(tt.template)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
