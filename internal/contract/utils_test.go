package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"exact fit", "short", 5, "short"},
		{"truncated with ellipsis", "a longer string", 10, "a longe..."},
		{"tiny width has no room for ellipsis", "abcdef", 3, "abc"},
		{"zero width passes through", "abcdef", 0, "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateText(tt.in, tt.maxWidth))
		})
	}
}
