package util

import (
	"os"
	"sort"

	"github.com/jsphweid/chordpad/constants"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// EnsureOutputDir creates the recording directory if needed and returns it.
func EnsureOutputDir() (string, error) {
	dir := constants.GetOutDir()
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}
	return dir, nil
}

// GetKeysSorted returns the keys of m in ascending order.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Mod is the euclidean modulo, always in [0, n).
func Mod[A constraints.Integer](a A, n A) A {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Clamp[A constraints.Integer](num A, lo A, hi A) A {
	return Max(lo, Min(num, hi))
}
