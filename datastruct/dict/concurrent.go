package dict

import "sync"

// ConcurrentDoubleKeyDict 用读写锁包装 SimpleDoubleKeyDict：Add 持有写锁（包括其中触发的扩容），
// 其余只读操作持有读锁
type ConcurrentDoubleKeyDict[L, R, V any] struct {
	inner *SimpleDoubleKeyDict[L, R, V]
	mutex sync.RWMutex
}

func NewConcurrentDoubleKeyDict[L, R, V any](inner *SimpleDoubleKeyDict[L, R, V]) *ConcurrentDoubleKeyDict[L, R, V] {
	if inner == nil {
		panic("dict is nil")
	}
	return &ConcurrentDoubleKeyDict[L, R, V]{inner: inner}
}

// MakeConcurrentDoubleKeyDict 使用默认hasher新建线程安全的双key哈希表
func MakeConcurrentDoubleKeyDict[L, R comparable, V any](capacity int) (*ConcurrentDoubleKeyDict[L, R, V], error) {
	inner, err := NewSimpleDoubleKeyDict[L, R, V](capacity, nil, nil)
	if err != nil {
		return nil, err
	}
	return NewConcurrentDoubleKeyDict(inner), nil
}

func (c *ConcurrentDoubleKeyDict[L, R, V]) Add(left L, right R, val V) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.inner.Add(left, right, val)
}

func (c *ConcurrentDoubleKeyDict[L, R, V]) Get(left L, right R) (val V, err error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.inner.Get(left, right)
}

func (c *ConcurrentDoubleKeyDict[L, R, V]) TryGetValue(left L, right R) (val V, exists bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.inner.TryGetValue(left, right)
}

func (c *ConcurrentDoubleKeyDict[L, R, V]) ContainsKey(left L, right R) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.inner.ContainsKey(left, right)
}

func (c *ConcurrentDoubleKeyDict[L, R, V]) GetValuesByLeftKey(left L) []V {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.inner.GetValuesByLeftKey(left)
}

func (c *ConcurrentDoubleKeyDict[L, R, V]) GetValuesByRightKey(right R) []V {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.inner.GetValuesByRightKey(right)
}

func (c *ConcurrentDoubleKeyDict[L, R, V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.inner.Len()
}

func (c *ConcurrentDoubleKeyDict[L, R, V]) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.inner.Size()
}

var (
	_ DoubleKeyDict[string, int, int] = (*SimpleDoubleKeyDict[string, int, int])(nil)
	_ DoubleKeyDict[string, int, int] = (*ConcurrentDoubleKeyDict[string, int, int])(nil)
)
