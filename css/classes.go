package css

import (
	"maps"
	"slices"
)

// ClassSet is a deduplicated collection of class names.
type ClassSet map[string]struct{}

// NewClassSet creates set with provided names.
func NewClassSet(names ...string) ClassSet {
	s := make(ClassSet, len(names))
	s.Add(names...)
	return s
}

// Add puts names into the set, empty names are ignored.
func (s ClassSet) Add(names ...string) {
	for _, n := range names {
		if len(n) == 0 {
			continue
		}
		s[n] = struct{}{}
	}
}

func (s ClassSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s ClassSet) Len() int {
	return len(s)
}

// Sorted returns class names in byte-wise order.
func (s ClassSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
