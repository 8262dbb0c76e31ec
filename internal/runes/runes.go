// Package runes implements a compact set of runes.
package runes

const chunkSizeShift = 5 + (^uint(0) >> 32 & 1)
const chunkSize = 1 << chunkSizeShift

// Set is a bit set covering the range between its lowest and highest runes.
// A set is not modified after it is built by NewSet, so it is safe for concurrent reads.
type Set struct {
	low, high rune
	chunks    []uint
}

// NewSet creates a set containing all runes of items.
func NewSet(items string) *Set {
	s := &Set{}
	rs := []rune(items)
	if len(rs) == 0 {
		return s
	}

	min, max := minMax(rs)
	s.low = base(min)
	s.high = base(max) + chunkSize
	s.chunks = make([]uint, (s.high-s.low)>>chunkSizeShift)
	for _, r := range rs {
		s.chunks[s.chunkIndex(r)] |= bitMask(r)
	}
	return s
}

func base(r rune) rune {
	return r &^ (chunkSize - 1)
}

func bitMask(r rune) uint {
	return 1 << (uint(r) & (chunkSize - 1))
}

func (s *Set) chunkIndex(r rune) int {
	return int((r - s.low) >> chunkSizeShift)
}

func minMax(items []rune) (min, max rune) {
	min = items[0]
	max = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
		if item > max {
			max = item
		}
	}
	return
}

// Contains reports whether r is in the set.
func (s *Set) Contains(r rune) bool {
	if r < s.low || r >= s.high {
		return false
	}
	return s.chunks[s.chunkIndex(r)]&bitMask(r) != 0
}

// IsEmpty reports whether the set has no runes.
func (s *Set) IsEmpty() bool {
	for _, chunk := range s.chunks {
		if chunk != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of runes in the set.
func (s *Set) Len() int {
	n := 0
	for _, chunk := range s.chunks {
		for chunk != 0 {
			n++
			chunk &= chunk - 1
		}
	}
	return n
}

// String returns set runes in ascending order.
func (s *Set) String() string {
	res := make([]rune, 0, s.Len())
	r := s.low
	for _, chunk := range s.chunks {
		for i := 0; i < chunkSize; i++ {
			if chunk&1 != 0 {
				res = append(res, r)
			}
			r++
			chunk >>= 1
		}
	}
	return string(res)
}
