package dict

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcurrentScenario(t *testing.T) {
	d, err := MakeConcurrentDoubleKeyDict[testKey, int, int](0)
	require.NoError(t, err)
	fillScenario(t, d)
	checkScenario(t, d)
	require.ErrorIs(t, d.Add(testKey1, 1, 100), ErrDuplicateKey)
	require.True(t, d.ContainsKey(testKey2, 3))
	require.Equal(t, 3, d.Size())
}

func TestConcurrentNegativeCapacity(t *testing.T) {
	_, err := MakeConcurrentDoubleKeyDict[string, string, int](-5)
	require.ErrorIs(t, err, ErrCapacityOutOfRange)
}

// 写者插入互不相交的key对，读者反复查询已插入的key对，读到的value必须属于所查询的key
func TestConcurrentReadersAndWriters(t *testing.T) {
	d, err := MakeConcurrentDoubleKeyDict[string, int, string](0)
	require.NoError(t, err)

	const preloaded = 200
	for i := 0; i < preloaded; i++ {
		require.NoError(t, d.Add(fmt.Sprintf("pre%d", i), i, fmt.Sprintf("pre%d/%d", i, i)))
	}

	const writers, readers, perWriter = 8, 8, 500
	var inserted int64
	var torn int64
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				left := fmt.Sprintf("w%d", w)
				if err := d.Add(left, i, fmt.Sprintf("%s/%d", left, i)); err == nil {
					atomic.AddInt64(&inserted, 1)
				}
			}
		}(w)
	}
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				k := (i + r) % preloaded
				left := fmt.Sprintf("pre%d", k)
				val, ok := d.TryGetValue(left, k)
				if !ok || val != fmt.Sprintf("%s/%d", left, k) {
					atomic.AddInt64(&torn, 1)
				}
				vals := d.GetValuesByRightKey(k)
				found := false
				for _, v := range vals {
					if v == val {
						found = true
					}
				}
				if !found {
					atomic.AddInt64(&torn, 1)
				}
			}
		}(r)
	}
	wg.Wait()

	require.Zero(t, atomic.LoadInt64(&torn))
	require.Equal(t, int64(writers*perWriter), inserted)
	require.Equal(t, preloaded+int(inserted), d.Len())
	for w := 0; w < writers; w++ {
		require.Len(t, d.GetValuesByLeftKey(fmt.Sprintf("w%d", w)), perWriter)
	}
}

func TestConcurrentDuplicateRace(t *testing.T) {
	d, err := MakeConcurrentDoubleKeyDict[string, string, int](0)
	require.NoError(t, err)

	var success int64
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if d.Add("same", "pair", i) == nil {
				atomic.AddInt64(&success, 1)
			}
		}(i)
	}
	wg.Wait()
	require.Equal(t, int64(1), success)
	require.Equal(t, 1, d.Len())
}

func TestConcurrentReleasesLockOnPanic(t *testing.T) {
	panicky := HasherFunc[string]{
		HashFunc: func(k string) int {
			if k == "boom" {
				panic("hash failed")
			}
			return int(fnv32(k))
		},
		EqualFunc: func(a, b string) bool { return a == b },
	}
	inner, err := NewSimpleDoubleKeyDictWithHashers[string, string, int](0, panicky, StringHasher{})
	require.NoError(t, err)
	d := NewConcurrentDoubleKeyDict(inner)

	require.Panics(t, func() { _ = d.Add("boom", "r", 1) })
	require.NoError(t, d.Add("ok", "r", 2))
	require.Panics(t, func() { d.GetValuesByLeftKey("boom") })
	require.Equal(t, []int{2}, d.GetValuesByRightKey("r"))
}

func BenchmarkConcurrentTryGetValue(b *testing.B) {
	d, _ := MakeConcurrentDoubleKeyDict[int, int, int](0)
	for i := 0; i < 1000; i++ {
		_ = d.Add(i, i, i)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			d.TryGetValue(i%1000, i%1000)
			i++
		}
	})
}

func BenchmarkSimpleAdd(b *testing.B) {
	d, _ := NewSimpleDoubleKeyDict[int, int, int](0, nil, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Add(i, i, i)
	}
}
