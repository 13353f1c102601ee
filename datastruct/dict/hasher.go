package dict

import (
	"hash/maphash"
	"math"
)

// ComparableHasher 是可比较类型的默认Hasher，相等即 ==。
// 零值的seed未初始化，必须通过 NewComparableHasher 创建
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

func NewComparableHasher[K comparable]() *ComparableHasher[K] {
	return &ComparableHasher[K]{seed: maphash.MakeSeed()}
}

func (h *ComparableHasher[K]) Hash(key K) int {
	return int(maphash.Comparable(h.seed, key) & math.MaxInt)
}

func (h *ComparableHasher[K]) Equal(a, b K) bool {
	return a == b
}

const prime32 = uint32(16777619)

func fnv32(key string) uint32 {
	hash := uint32(2166136261)
	for i := 0; i < len(key); i++ {
		hash *= prime32
		hash ^= uint32(key[i])
	}
	return hash
}

// StringHasher 使用fnv32计算字符串哈希，结果与进程无关，便于测试中构造冲突
type StringHasher struct{}

func (StringHasher) Hash(key string) int {
	return int(fnv32(key))
}

func (StringHasher) Equal(a, b string) bool {
	return a == b
}

// HasherFunc 用两个函数组装一个Hasher，两个函数都不能为nil
type HasherFunc[K any] struct {
	HashFunc  func(K) int
	EqualFunc func(a, b K) bool
}

func (f HasherFunc[K]) Hash(key K) int {
	return f.HashFunc(key)
}

func (f HasherFunc[K]) Equal(a, b K) bool {
	return f.EqualFunc(a, b)
}
