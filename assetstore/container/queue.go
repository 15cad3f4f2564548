package container

import (
	"iter"
	"slices"
)

// Queue is a FIFO queue that also supports out-of-order removal
type Queue[T any] struct {
	items []T
}

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds item at the rear
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the front item.
// It returns false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	front := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		// drop the consumed backing array
		q.items = nil
	}
	return front, true
}

// Peek returns the front item without removing it
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// RemoveIf removes matching items anywhere in the queue and returns how many
// were removed
func (q *Queue[T]) RemoveIf(pred func(T) bool) int {
	before := len(q.items)
	q.items = slices.DeleteFunc(q.items, pred)
	return before - len(q.items)
}

// Update applies fn in place to the first item matching pred
func (q *Queue[T]) Update(pred func(T) bool, fn func(*T)) bool {
	i := slices.IndexFunc(q.items, pred)
	if i < 0 {
		return false
	}
	fn(&q.items[i])
	return true
}

// Find returns the first item matching pred
func (q *Queue[T]) Find(pred func(T) bool) (T, bool) {
	if i := slices.IndexFunc(q.items, pred); i >= 0 {
		return q.items[i], true
	}
	var zero T
	return zero, false
}

// Each calls fn front-to-rear until fn returns false
func (q *Queue[T]) Each(fn func(T) bool) {
	for _, item := range q.items {
		if !fn(item) {
			return
		}
	}
}

// All returns a front-to-rear iterator
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		q.Each(yield)
	}
}

// Items returns a front-to-rear snapshot
func (q *Queue[T]) Items() []T {
	return slices.Clone(q.items)
}

// Len returns the number of queued items
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue has no items
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}
