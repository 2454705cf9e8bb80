package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsNeverNegative(t *testing.T) {
	cases := []struct{ a, n, want int }{
		{5, 12, 5},
		{12, 12, 0},
		{-1, 12, 11},
		{-13, 12, 11},
		{-1, 4, 3},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v mod %v", c.a, c.n), func(t *testing.T) {
			assert.Equal(t, c.want, Mod(c.a, c.n))
		})
	}
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Clamp(5, -2, 2))
	assert.Equal(-3, Clamp(-9, -3, 3))
	assert.Equal(1, Clamp(1, -3, 3))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 1, "c": 2, "a": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeysSorted(m))
}
