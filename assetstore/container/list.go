package container

import (
	"iter"
	"slices"
)

// List is an insertion-ordered sequence
type List[T any] struct {
	items []T
}

// NewList creates a list holding items in the given order
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Append adds item at the end of the list
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
}

// RemoveIf removes every element for which pred returns true, keeping the
// order of the remaining elements. It returns the number of removed elements.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	before := len(l.items)
	l.items = slices.DeleteFunc(l.items, pred)
	return before - len(l.items)
}

// Each calls fn for every element in insertion order until fn returns false
func (l *List[T]) Each(fn func(T) bool) {
	for _, item := range l.items {
		if !fn(item) {
			return
		}
	}
}

// All returns an iterator over the elements in insertion order
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.Each(yield)
	}
}

// Find returns the first element matching pred
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	if i := slices.IndexFunc(l.items, pred); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// Contains reports whether any element matches pred
func (l *List[T]) Contains(pred func(T) bool) bool {
	return slices.IndexFunc(l.items, pred) >= 0
}

// Update applies fn in place to the first element matching pred.
// It reports whether an element was found.
func (l *List[T]) Update(pred func(T) bool, fn func(*T)) bool {
	i := slices.IndexFunc(l.items, pred)
	if i < 0 {
		return false
	}
	fn(&l.items[i])
	return true
}

// Items returns a copy of the elements in insertion order
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// Len returns the number of elements
func (l *List[T]) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the list has no elements
func (l *List[T]) IsEmpty() bool {
	return len(l.items) == 0
}
