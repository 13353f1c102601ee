package prime

import (
	"math"

	"github.com/duke-git/lancet/v2/mathutil"
)

// minDimension 矩阵最小边长，保证即使容量为0也有可用的哈希槽
const minDimension = 3

// IsPrime 试除法判断n是否为素数
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// atLeast 返回不小于n的最小素数
func atLeast(n int) int {
	n = mathutil.Max(n, minDimension)
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		if n > math.MaxInt-2 {
			panic("prime: dimension overflow")
		}
		n += 2
	}
	return n
}

// sqrtCeil 返回满足 r*r >= n 的最小非负整数r
func sqrtCeil(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r < n {
		r++
	}
	for r > 0 && (r-1)*(r-1) >= n {
		r--
	}
	return r
}

// Next 根据期望容纳的元素个数，返回矩阵的边长：满足 p*p >= capacity 的最小素数，且不小于3
func Next(capacity int) int {
	if capacity < 0 {
		panic("prime: negative capacity")
	}
	return atLeast(sqrtCeil(capacity))
}

// Expand 扩容时使用，返回满足 p*p >= 2*count 的最小素数。
// 在 count > 1.5*size*size 时调用，新面积大于旧面积的3倍，重新插入不会再次触发扩容
func Expand(count int) int {
	if count < 0 {
		panic("prime: negative count")
	}
	return atLeast(sqrtCeil(2 * count))
}
