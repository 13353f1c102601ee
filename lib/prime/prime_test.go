package prime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, p := range primes {
		require.True(t, IsPrime(p), "%d should be prime", p)
	}
	composites := []int{-7, 0, 1, 4, 9, 15, 91, 7917}
	for _, c := range composites {
		require.False(t, IsPrime(c), "%d should not be prime", c)
	}
}

func TestNext(t *testing.T) {
	cases := []struct {
		capacity int
		want     int
	}{
		{0, 3},
		{1, 3},
		{9, 3},
		{10, 5},
		{25, 5},
		{26, 7},
		{100, 11},
		{10000, 101},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Next(c.capacity), "Next(%d)", c.capacity)
	}
	require.Panics(t, func() { Next(-1) })
}

func TestExpandOutgrowsLoadFactor(t *testing.T) {
	size := Next(0)
	for i := 0; i < 20; i++ {
		// 刚好越过 1.5 的装载因子
		count := size*size*3/2 + 1
		next := Expand(count)
		require.True(t, IsPrime(next))
		require.Greater(t, next, size)
		require.LessOrEqual(t, 2*count, next*next)
		require.Greater(t, next*next, 3*size*size)
		size = next
	}
}
