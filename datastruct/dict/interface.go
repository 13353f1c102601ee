package dict

// Hasher 为某一个维度的key提供哈希和相等比较，两个维度可以分别指定
type Hasher[K any] interface {
	Hash(key K) int
	Equal(a, b K) bool
}

// DoubleKeyDict 是双key哈希表的接口定义，每个value同时由左key和右key索引
type DoubleKeyDict[L, R, V any] interface {
	Add(left L, right R, val V) error
	Get(left L, right R) (val V, err error)
	TryGetValue(left L, right R) (val V, exists bool)
	ContainsKey(left L, right R) bool
	GetValuesByLeftKey(left L) []V  // 返回左key对应的所有value
	GetValuesByRightKey(right R) []V // 返回右key对应的所有value
	Len() int
	Size() int // 当前矩阵的边长，未分配时为0
}
