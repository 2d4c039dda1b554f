package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "zero",
			input:    0,
			expected: "0",
		},
		{
			name:     "whole hours",
			input:    8,
			expected: "8",
		},
		{
			name:     "whole hours from float",
			input:    8.0,
			expected: "8",
		},
		{
			name:     "half hour",
			input:    7.5,
			expected: "7.5",
		},
		{
			name:     "quarter hour rounds to one decimal",
			input:    2.25,
			expected: "2.2",
		},
		{
			name:     "full day",
			input:    24,
			expected: "24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHours(tt.input))
		})
	}
}
