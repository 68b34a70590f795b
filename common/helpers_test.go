package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsScalarName(t *testing.T) {
	assert.True(t, IsScalarName("Int"))
	assert.True(t, IsScalarName("JSON"))
	assert.False(t, IsScalarName("Post"))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

func TestAsyncMapReduce(t *testing.T) {
	res, errs := AsyncMapReduce([]int{1, 2, 3}, 0, func(v int) (int, error) {
		return v * 2, nil
	}, func(acc, value int) int {
		return acc + value
	})

	assert.Nil(t, errs)
	assert.Equal(t, 12, res)
}

func TestAsyncMapReduceErrors(t *testing.T) {
	_, errs := AsyncMapReduce([]int{1, 2, 3}, 0, func(v int) (int, error) {
		if v == 2 {
			return 0, errors.New("boom")
		}
		return v, nil
	}, func(acc, value int) int {
		return acc + value
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "boom", errs[0].Message)
}
