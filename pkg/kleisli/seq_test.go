package kleisli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromSlice_Order(t *testing.T) {
	t.Parallel()

	s := FromSlice([]int{1, 2, 3})

	require.Equal(t, []int{1, 2, 3}, Collect(s))
}

func TestSeq_Restartable(t *testing.T) {
	t.Parallel()

	s := Filter(Of(1, 2, 3, 4), func(v int) bool { return v%2 == 0 })

	first := Collect(s)
	second := Collect(s)

	require.Equal(t, []int{2, 4}, first)
	require.Equal(t, first, second)
}

func TestMap_Lazy(t *testing.T) {
	t.Parallel()

	calls := 0
	s := Map(Of(1, 2, 3), func(v int) int {
		calls++
		return v * 10
	})

	require.Equal(t, 0, calls, "nothing should run before the first pull")

	v, ok := Head(s)
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Equal(t, 1, calls, "only the head should be computed")
}

func TestConcat_Order(t *testing.T) {
	t.Parallel()

	s := Concat(Of(1, 2), Empty[int](), Of(3))

	require.Equal(t, []int{1, 2, 3}, Collect(s))
}

func TestHead_Empty(t *testing.T) {
	t.Parallel()

	_, ok := Head(Empty[string]())

	require.False(t, ok)
}

func TestFilter_EarlyStop(t *testing.T) {
	t.Parallel()

	seen := 0
	s := Filter(Of(1, 2, 3, 4, 5), func(v int) bool {
		seen++
		return true
	})

	for range s {
		break
	}

	require.Equal(t, 1, seen, "consumer break must stop the upstream scan")
}
