package board

import "math/bits"

// A WindowSet is a subset of the window table, one bit per table index.
// It is a plain value: copying a set never aliases another one, so each
// search branch can keep its own.
type WindowSet [2]uint64

// AllWindows contains every window of the table.
var AllWindows = WindowSet{^uint64(0), 1<<(NumWindows-64) - 1}

func (s WindowSet) with(i int) WindowSet {
	s[i/64] |= 1 << (i % 64)
	return s
}

// Has reports whether table index i is in the set.
func (s WindowSet) Has(i int) bool {
	if i < 0 || i >= NumWindows {
		return false
	}
	return s[i/64]&(1<<(i%64)) != 0
}

// Len returns the number of windows in the set.
func (s WindowSet) Len() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1])
}

// Without returns the windows of s that are not in o.
func (s WindowSet) Without(o WindowSet) WindowSet {
	return WindowSet{s[0] &^ o[0], s[1] &^ o[1]}
}

// Intersect returns the windows present in both sets.
func (s WindowSet) Intersect(o WindowSet) WindowSet {
	return WindowSet{s[0] & o[0], s[1] & o[1]}
}

// SubsetOf reports whether every window of s is also in o.
func (s WindowSet) SubsetOf(o WindowSet) bool {
	return s.Without(o) == WindowSet{}
}

// Each calls fn with the table index and window of every member, in table
// order. Iteration stops early if fn returns false.
func (s WindowSet) Each(fn func(i int, w Window) bool) {
	for word := range s {
		rem := s[word]
		for rem != 0 {
			i := word*64 + bits.TrailingZeros64(rem)
			if !fn(i, windows[i]) {
				return
			}
			rem &= rem - 1
		}
	}
}

// Windows lists the members of the set in table order.
func (s WindowSet) Windows() []Window {
	ws := make([]Window, 0, s.Len())
	s.Each(func(_ int, w Window) bool {
		ws = append(ws, w)
		return true
	})
	return ws
}
