package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{"12", 12},
		{" 7 ", 7},
		{"1,250", 1250},
		{"3.9", 3},
		{"abc", 0},
		{"", 0},
		{float64(4), 4},
		{int64(9), 9},
		{nil, 0},
		{"NaN", 0},
		{"inf", 0},
		{"-Infinity", 0},
		{"1e999", 0},
		{"1e30", math.MaxInt},
		{"-1e30", math.MinInt},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToInt(tt.in), "input %v", tt.in)
	}
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 12.5, ToFloat("12.5"))
	assert.Equal(t, 1500.25, ToFloat("1,500.25"))
	assert.Equal(t, 0.0, ToFloat("n/a"))
	assert.Equal(t, 3.0, ToFloat(3))
	assert.Equal(t, 0.0, ToFloat("NaN"))
	assert.Equal(t, 0.0, ToFloat("inf"))
	assert.Equal(t, 0.0, ToFloat("Infinity"))
	assert.Equal(t, 0.0, ToFloat("1e999"))
	assert.Equal(t, 0.0, ToFloat(math.NaN()))
	assert.Equal(t, 2.5e10, ToFloat("2.5e10"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "TRUE", ToString(true))
	assert.Equal(t, "FALSE", ToString(false))
	assert.Equal(t, "1250000", ToString(float64(1250000)))
	assert.Equal(t, "0.15", ToString(0.15))
	assert.Equal(t, "42", ToString(42))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool(1))
	assert.False(t, ToBool("FALSE"))
	assert.False(t, ToBool(""))
	assert.False(t, ToBool("maybe"))
}
