package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  NotFound("section", "storage"),
			want: "[NOT_FOUND] section not found: storage",
		},
		{
			name: "with cause",
			err:  Parsing("failed to decode catalog", fmt.Errorf("unexpected token")),
			want: "[PARSING_ERROR] failed to decode catalog: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsTypeSeesThroughWrapping(t *testing.T) {
	base := NotFound("section", "traffic")
	wrapped := fmt.Errorf("estimate: %w", base)

	assert.True(t, IsType(wrapped, TypeNotFound))
	assert.False(t, IsType(wrapped, TypeInput))
	assert.False(t, IsType(fmt.Errorf("plain"), TypeNotFound))
}

func TestWithContext(t *testing.T) {
	err := Input("invalid catalog").WithContext("problems", []string{"gap"})

	assert.Equal(t, []string{"gap"}, err.Context["problems"])
	assert.True(t, IsType(err, TypeInput))
}
