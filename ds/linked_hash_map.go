package ds

import (
	"container/list"
)

// LinkedHashMap is a map that keeps the first value stored for each key and
// returns values in insertion order.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering *list.List
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: list.New(),
	}
}

func (r *LinkedHashMap[K, V]) Values() []V {
	values := make([]V, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		values = append(values, r.hashMap[runner.Value.(K)])
	}
	return values
}

// PutIfAbsent stores value only for a new key and reports whether it did.
func (r *LinkedHashMap[K, V]) PutIfAbsent(key K, value V) bool {
	if _, existed := r.hashMap[key]; existed {
		return false
	}
	r.ordering.PushBack(key)
	r.hashMap[key] = value
	return true
}
