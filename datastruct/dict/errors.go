package dict

import (
	"errors"
	"reflect"
)

var (
	ErrNilKey             = errors.New("dict: key is nil")
	ErrNilHasher          = errors.New("dict: hasher is nil")
	ErrCapacityOutOfRange = errors.New("dict: capacity out of range")
	ErrDuplicateKey       = errors.New("dict: an item with the same key pair has already been added")
	ErrKeyNotFound        = errors.New("dict: key pair not found")
)

// isNil 判断key是否为空：nil指针、nil接口、nil map/slice/func/chan
func isNil(key any) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
