package dict

import (
	"fmt"
	"math"

	"doublekey/lib/prime"
	"doublekey/logger"
)

// 装载因子 count/(size*size) 超过 3/2 时扩容，用整数比较避免浮点误差
const (
	loadFactorNum = 3
	loadFactorDen = 2
)

type entry[L, R, V any] struct {
	leftHash  int
	rightHash int
	left      L
	right     R
	val       V
}

// SimpleDoubleKeyDict 双key哈希表，非线程安全。
// buckets 是 size*size 的矩阵，buckets[i][j] 保存 leftHash == i 且 rightHash == j 的冲突链。
// 按某一维度查询需要扫描一整行或一整列，代价为O(size)，换来不必维护两套互相引用的索引
type SimpleDoubleKeyDict[L, R, V any] struct {
	leftHasher  Hasher[L]
	rightHasher Hasher[R]
	buckets     [][][]entry[L, R, V]
	size        int
	count       int
}

// NewSimpleDoubleKeyDict 新建双key哈希表，hasher为nil时使用该维度key类型的 == 比较和默认哈希。
// capacity 为0时，第一次插入才分配矩阵
func NewSimpleDoubleKeyDict[L, R comparable, V any](capacity int, left Hasher[L], right Hasher[R]) (*SimpleDoubleKeyDict[L, R, V], error) {
	if left == nil {
		left = NewComparableHasher[L]()
	}
	if right == nil {
		right = NewComparableHasher[R]()
	}
	return NewSimpleDoubleKeyDictWithHashers[L, R, V](capacity, left, right)
}

// NewSimpleDoubleKeyDictWithHashers 用于不可比较的key类型，两个hasher都必须提供
func NewSimpleDoubleKeyDictWithHashers[L, R, V any](capacity int, left Hasher[L], right Hasher[R]) (*SimpleDoubleKeyDict[L, R, V], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrCapacityOutOfRange, capacity)
	}
	if left == nil || right == nil {
		return nil, ErrNilHasher
	}
	d := &SimpleDoubleKeyDict[L, R, V]{
		leftHasher:  left,
		rightHasher: right,
	}
	if capacity > 0 {
		d.initialize(prime.Next(capacity))
	}
	return d, nil
}

func (d *SimpleDoubleKeyDict[L, R, V]) initialize(size int) {
	buckets := make([][][]entry[L, R, V], size)
	for i := 0; i < size; i++ {
		buckets[i] = make([][]entry[L, R, V], size)
	}
	d.buckets = buckets
	d.size = size
}

// spread 去掉符号位后对矩阵边长取模
func spread(hashCode, size int) int {
	return (hashCode & math.MaxInt) % size
}

func (d *SimpleDoubleKeyDict[L, R, V]) leftIndex(left L) int {
	return spread(d.leftHasher.Hash(left), d.size)
}

func (d *SimpleDoubleKeyDict[L, R, V]) rightIndex(right R) int {
	return spread(d.rightHasher.Hash(right), d.size)
}

func (d *SimpleDoubleKeyDict[L, R, V]) matchLeft(e *entry[L, R, V], leftHash int, left L) bool {
	return e.leftHash == leftHash && d.leftHasher.Equal(e.left, left)
}

func (d *SimpleDoubleKeyDict[L, R, V]) matchRight(e *entry[L, R, V], rightHash int, right R) bool {
	return e.rightHash == rightHash && d.rightHasher.Equal(e.right, right)
}

// find 在冲突链中查找两个维度都相等的entry
func (d *SimpleDoubleKeyDict[L, R, V]) find(left L, right R) (*entry[L, R, V], bool) {
	if d.buckets == nil || isNil(left) || isNil(right) {
		return nil, false
	}
	leftHash, rightHash := d.leftIndex(left), d.rightIndex(right)
	chain := d.buckets[leftHash][rightHash]
	for i := range chain {
		e := &chain[i]
		if d.matchLeft(e, leftHash, left) && d.matchRight(e, rightHash, right) {
			return e, true
		}
	}
	return nil, false
}

// Add 插入一个value，任一key为空返回 ErrNilKey，key对已存在返回 ErrDuplicateKey
func (d *SimpleDoubleKeyDict[L, R, V]) Add(left L, right R, val V) error {
	if d == nil {
		panic("dict is nil")
	}
	if isNil(left) || isNil(right) {
		return ErrNilKey
	}
	if d.buckets == nil {
		d.initialize(prime.Next(0))
	}
	return d.insert(left, right, val)
}

func (d *SimpleDoubleKeyDict[L, R, V]) insert(left L, right R, val V) error {
	leftHash, rightHash := d.leftIndex(left), d.rightIndex(right)
	chain := d.buckets[leftHash][rightHash]
	// 只有两个维度同时相等才算重复，只共享一个key的entry不影响插入
	for i := range chain {
		e := &chain[i]
		if d.matchLeft(e, leftHash, left) && d.matchRight(e, rightHash, right) {
			return fmt.Errorf("%w: (%v, %v)", ErrDuplicateKey, left, right)
		}
	}
	d.buckets[leftHash][rightHash] = append(chain, entry[L, R, V]{
		leftHash:  leftHash,
		rightHash: rightHash,
		left:      left,
		right:     right,
		val:       val,
	})
	d.count++
	if d.count*loadFactorDen > d.size*d.size*loadFactorNum {
		d.resize()
	}
	return nil
}

// resize 按当前元素个数计算新边长，把所有entry重新插入新矩阵，完成后才替换旧矩阵
func (d *SimpleDoubleKeyDict[L, R, V]) resize() {
	oldSize := d.size
	rebuilt := &SimpleDoubleKeyDict[L, R, V]{
		leftHasher:  d.leftHasher,
		rightHasher: d.rightHasher,
	}
	rebuilt.initialize(prime.Expand(d.count))
	for _, row := range d.buckets {
		for _, chain := range row {
			for i := range chain {
				e := &chain[i]
				// 重新插入过程中允许再次扩容，由rebuilt自己处理
				if err := rebuilt.insert(e.left, e.right, e.val); err != nil {
					panic(fmt.Sprintf("dict: replay failed during resize: %v", err))
				}
			}
		}
	}
	d.buckets = rebuilt.buckets
	d.size = rebuilt.size
	d.count = rebuilt.count
	logger.Debugf("dict resized from %d to %d, count %d", oldSize, d.size, d.count)
}

// Get 返回key对对应的value，不存在时返回 ErrKeyNotFound
func (d *SimpleDoubleKeyDict[L, R, V]) Get(left L, right R) (val V, err error) {
	val, exists := d.TryGetValue(left, right)
	if !exists {
		return val, fmt.Errorf("%w: (%v, %v)", ErrKeyNotFound, left, right)
	}
	return val, nil
}

// TryGetValue 查找key对，两个维度的哈希和相等比较都满足才返回
func (d *SimpleDoubleKeyDict[L, R, V]) TryGetValue(left L, right R) (val V, exists bool) {
	if d == nil {
		panic("dict is nil")
	}
	e, ok := d.find(left, right)
	if !ok {
		return val, false
	}
	return e.val, true
}

func (d *SimpleDoubleKeyDict[L, R, V]) ContainsKey(left L, right R) bool {
	_, ok := d.TryGetValue(left, right)
	return ok
}

// GetValuesByLeftKey 扫描 leftHash 所在的整行，按列序、链序返回所有左key相等的value
func (d *SimpleDoubleKeyDict[L, R, V]) GetValuesByLeftKey(left L) []V {
	if d == nil {
		panic("dict is nil")
	}
	result := make([]V, 0)
	if d.buckets == nil || isNil(left) {
		return result
	}
	leftHash := d.leftIndex(left)
	for _, chain := range d.buckets[leftHash] {
		for i := range chain {
			if d.matchLeft(&chain[i], leftHash, left) {
				result = append(result, chain[i].val)
			}
		}
	}
	return result
}

// GetValuesByRightKey 扫描 rightHash 所在的整列，按行序、链序返回所有右key相等的value
func (d *SimpleDoubleKeyDict[L, R, V]) GetValuesByRightKey(right R) []V {
	if d == nil {
		panic("dict is nil")
	}
	result := make([]V, 0)
	if d.buckets == nil || isNil(right) {
		return result
	}
	rightHash := d.rightIndex(right)
	for _, row := range d.buckets {
		chain := row[rightHash]
		for i := range chain {
			if d.matchRight(&chain[i], rightHash, right) {
				result = append(result, chain[i].val)
			}
		}
	}
	return result
}

func (d *SimpleDoubleKeyDict[L, R, V]) Len() int {
	if d == nil {
		panic("dict is nil")
	}
	return d.count
}

func (d *SimpleDoubleKeyDict[L, R, V]) Size() int {
	if d == nil {
		panic("dict is nil")
	}
	return d.size
}
