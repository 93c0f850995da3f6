package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		length   int
		expected string
	}{
		{name: "Zero length", str: "helm", length: 0, expected: ""},
		{name: "Shorter than length", str: "helm", length: 10, expected: "helm"},
		{name: "Exact length", str: "helm", length: 4, expected: "helm"},
		{name: "Truncated with ellipsis", str: "Error: INSTALLATION FAILED", length: 10, expected: "Error: ..."},
		{name: "Too short for ellipsis", str: "helm install", length: 3, expected: "hel"},
		{name: "Multibyte runes", str: "ÄÖÜäöü", length: 5, expected: "ÄÖ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.str, tt.length))
		})
	}
}
