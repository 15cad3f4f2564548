package container

import (
	"fmt"
	"slices"
)

// BoundedStack is a LIFO stack holding at most a fixed number of items.
// Items are de-duplicated by key: pushing an item whose key is already in
// the stack promotes it to the top instead of adding a second entry.
type BoundedStack[T any, K comparable] struct {
	// items is stored bottom-to-top so pushes append
	items     []T
	capacity  int
	key       func(T) K
	evictions int
}

// NewBoundedStack creates an empty stack. capacity must be positive.
func NewBoundedStack[T any, K comparable](capacity int, key func(T) K) (*BoundedStack[T, K], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("stack capacity must be positive, got %d", capacity)
	}
	if key == nil {
		return nil, fmt.Errorf("stack key function is required")
	}
	return &BoundedStack[T, K]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
		key:      key,
	}, nil
}

// Push places item on top of the stack.
//
// When the current top has the same key the push is a no-op. Otherwise any
// older entry with that key is removed first, and if the stack then exceeds
// its capacity the bottom-most entry is evicted. Push reports whether the
// stack changed.
func (s *BoundedStack[T, K]) Push(item T) bool {
	k := s.key(item)
	if n := len(s.items); n > 0 && s.key(s.items[n-1]) == k {
		return false
	}

	s.items = slices.DeleteFunc(s.items, func(existing T) bool {
		return s.key(existing) == k
	})
	s.items = append(s.items, item)

	if len(s.items) > s.capacity {
		overflow := len(s.items) - s.capacity
		s.items = slices.Delete(s.items, 0, overflow)
		s.evictions += overflow
	}
	return true
}

// Peek returns the top item
func (s *BoundedStack[T, K]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Pop discards the top item. It returns false when the stack is empty.
func (s *BoundedStack[T, K]) Pop() bool {
	if len(s.items) == 0 {
		return false
	}
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return true
}

// RemoveIf drops every entry matching pred and returns how many were dropped
func (s *BoundedStack[T, K]) RemoveIf(pred func(T) bool) int {
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, pred)
	return before - len(s.items)
}

// Clear empties the stack and returns the number of discarded entries
func (s *BoundedStack[T, K]) Clear() int {
	n := len(s.items)
	clear(s.items)
	s.items = s.items[:0]
	return n
}

// Items returns a top-to-bottom snapshot
func (s *BoundedStack[T, K]) Items() []T {
	out := slices.Clone(s.items)
	slices.Reverse(out)
	return out
}

// Len returns the number of entries
func (s *BoundedStack[T, K]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack has no entries
func (s *BoundedStack[T, K]) IsEmpty() bool {
	return len(s.items) == 0
}

// Cap returns the maximum number of entries
func (s *BoundedStack[T, K]) Cap() int {
	return s.capacity
}

// Evictions returns how many entries were dropped from the bottom because
// the stack was full
func (s *BoundedStack[T, K]) Evictions() int {
	return s.evictions
}
