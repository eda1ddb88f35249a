package Queues

// minCap is the capacity a ring grows to from zero.
const minCap = 4

// Ring is a Queue backed by a circular slice that grows by half its size
// when full. The zero value is an empty queue ready to use.
type Ring[T any] struct {
	sz, head uint
	content  []T
}

// MakeRing returns a Ring that can hold initCap items before growing.
func MakeRing[T any](initCap uint) *Ring[T] {
	return &Ring[T]{content: make([]T, initCap)}
}

// Empty [Queue.Empty]
func (u *Ring[T]) Empty() bool {
	return u.sz == 0
}

// Size [Queue.Size]
func (u *Ring[T]) Size() uint {
	return u.sz
}

// resize moves the items into a slice of length newLen, head first.
// newLen must be at least sz.
func (u *Ring[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if n := uint(len(u.content)); u.head+u.sz <= n {
		copy(nc, u.content[u.head:u.head+u.sz])
	} else {
		m := copy(nc, u.content[u.head:])
		copy(nc[m:], u.content[:u.sz-uint(m)])
	}
	u.content, u.head = nc, 0
}

// Shrink the backing slice to fit the queued items.
func (u *Ring[T]) Shrink() {
	u.resize(u.sz)
}

// Clear drops every item.
func (u *Ring[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

// Push [Queue.Push]
// Time: amortized O(1)
func (u *Ring[T]) Push(item T) {
	if n := uint(len(u.content)); u.sz == n {
		u.resize(max(n+n/2, minCap))
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

// Pop [Queue.Pop]
// Time: O(1)
func (u *Ring[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

// Peek [Queue.Peek]
func (u *Ring[T]) Peek() T {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}
