package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 42, 42},
		{"float64", 42.9, 42},
		{"string", "17", 17},
		{"bad string", "abc", 0},
		{"bytes", []byte("5"), 5},
		{"bool falls through", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "x", ToString("x"))
	// JSON numbers decode as float64; whole values must not keep a decimal point
	assert.Equal(t, "3", ToString(float64(3)))
	assert.Equal(t, "3.5", ToString(3.5))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool(float64(1)))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(nil))
}

func TestToStrings(t *testing.T) {
	assert.Nil(t, ToStrings(nil))
	assert.Equal(t, []string{"a", "b"}, ToStrings([]any{"a", "b"}))
	assert.Equal(t, []string{"a"}, ToStrings("a"))
	assert.Nil(t, ToStrings(""))
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 2.5, ToFloat(2.5))
	assert.Equal(t, 2.0, ToFloat("2"))
	assert.Equal(t, 0.0, ToFloat(struct{}{}))
}
