package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "250", expected: "250"},
		{raw: " 42.5 ", expected: "42.5"},
		{raw: "-3", expected: "-3"},
		{raw: "1e9", expected: "1000000000"},
		{raw: "512B", expected: "512"},
		{raw: "10GB", expected: "10000000000"},
		{raw: "10gb", expected: "10000000000"},
		{raw: "1.5 GiB", expected: "1610612736"},
		{raw: "2TiB", expected: "2199023255552"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseQuantity(tt.raw)
			require.NoError(t, err)
			assert.Truef(t, d(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestParseQuantityRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "10XB", "GB", "1.2.3"} {
		_, err := ParseQuantity(raw)
		assert.Error(t, err, "input %q", raw)
	}
}
