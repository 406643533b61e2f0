package accumulate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulateSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		seed  int
		want  []int
	}{
		{"factorials", []int{1, 2, 3, 4, 5}, 1, []int{1, 2, 6, 24, 120}},
		{"single", []int{7}, 3, []int{21}},
		{"empty", []int{}, 1, []int{}},
		{"nil", nil, 1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccumulateSlice(tt.input, tt.seed, multiply))
		})
	}
}

func TestAccumulateSliceBalances(t *testing.T) {
	payments := []float64{10, 2.5, 7.5}
	balances := AccumulateSlice(payments, 100.0, func(b, p float64) float64 {
		return b - p
	})

	assert.Equal(t, []float64{90, 87.5, 80}, balances)
}

func TestReduceSlice(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(sumHundredInts, ReduceSlice(hundredInts, 0, add))
	assert.Equal("abc", ReduceSlice([]string{"a", "b", "c"}, "", concat))
	assert.Equal(9, ReduceSlice([]int{}, 9, add))
}

func TestMapSlice(t *testing.T) {
	assert := assert.New(t)

	words := []string{"these", "are", "all", "lower"}
	assert.Equal([]string{"THESE", "ARE", "ALL", "LOWER"}, MapSlice(words, strings.ToUpper))
	assert.Equal([]int{5, 3, 3, 5}, MapSlice(words, func(s string) int { return len(s) }))
	assert.Equal([]int{}, MapSlice([]string(nil), func(s string) int { return len(s) }))
}

func TestFilterSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"mixed", []int{1, 2, 3, 4, 5, 6}, []int{2, 4, 6}},
		{"all kept", []int{2, 4}, []int{2, 4}},
		{"all filtered", []int{1, 3, 5}, []int{}},
		{"empty", []int{}, []int{}},
		{"nil", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSlice(tt.input, isEven)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
