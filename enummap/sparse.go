package enummap

import (
	"cmp"
	"iter"
	"slices"
)

// Sparse maps arbitrary keys to strings through a key-sorted slice.
type Sparse[K Key] struct {
	entries []Entry[K]
}

// NewSparse builds a sparse table. Entries may be given in any order.
func NewSparse[K Key](entries []Entry[K]) (*Sparse[K], error) {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry[K]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return nil, duplicateKey(sorted[i].Key, sorted[i-1].Name, sorted[i].Name)
		}
	}
	return &Sparse[K]{entries: sorted}, nil
}

// MustSparse is like NewSparse but panics on a malformed table.
func MustSparse[K Key](entries []Entry[K]) *Sparse[K] {
	s, err := NewSparse(entries)
	if err != nil {
		panic("enummap: " + err.Error())
	}
	return s
}

// Lookup returns the display string for k, or "" if k has no entry.
func (s *Sparse[K]) Lookup(k K) string {
	name, _ := s.Get(k)
	return name
}

// Get returns the display string for k and whether k has an entry.
func (s *Sparse[K]) Get(k K) (string, bool) {
	i, found := slices.BinarySearchFunc(s.entries, k, func(e Entry[K], t K) int {
		return cmp.Compare(e.Key, t)
	})
	if !found {
		return "", false
	}
	return s.entries[i].Name, true
}

// Len returns the number of entries.
func (s *Sparse[K]) Len() int {
	return len(s.entries)
}

// All yields entries in ascending key order.
func (s *Sparse[K]) All() iter.Seq2[K, string] {
	return func(yield func(K, string) bool) {
		for _, e := range s.entries {
			if !yield(e.Key, e.Name) {
				return
			}
		}
	}
}
