package queue

import (
	"sync/atomic"
)

// Queue is a FIFO backed by an atomically swapped slice.
type Queue[T any] struct {
	items atomic.Pointer[[]T]
}

func (q *Queue[T]) Len() int {
	return len(*q.items.Load())
}

func (q *Queue[T]) Pop() (T, bool) {
	items := *q.items.Load()
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	item := items[0]
	items = items[1:]
	q.items.Store(&items)
	return item, true
}

func (q *Queue[T]) Push(item T) {
	items := *q.items.Load()
	items = append(items, item)
	q.items.Store(&items)
}

func New[T any](maybeSize ...int) *Queue[T] {
	var items []T
	if len(maybeSize) > 0 {
		items = make([]T, 0, maybeSize[0])
	}
	q := &Queue[T]{}
	q.items.Store(&items)
	return q
}
