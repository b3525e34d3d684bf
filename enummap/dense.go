package enummap

import (
	"fmt"
	"iter"
)

// MaxDenseKey is the largest key a Dense table accepts.
const MaxDenseKey = 0xFFFF

// Dense maps small keys to strings by direct array indexing.
type Dense[K Key] struct {
	names []string
	set   []bool
	count int
}

// NewDense builds a dense table sized to the largest key in entries.
func NewDense[K Key](entries []Entry[K]) (*Dense[K], error) {
	var hi uint32
	for _, e := range entries {
		if uint32(e.Key) > MaxDenseKey {
			return nil, fmt.Errorf("%w: 0x%x > 0x%x", ErrKeyRange, uint32(e.Key), MaxDenseKey)
		}
		hi = max(hi, uint32(e.Key))
	}

	size := 0
	if len(entries) > 0 {
		size = int(hi) + 1
	}
	d := &Dense[K]{
		names: make([]string, size),
		set:   make([]bool, size),
		count: len(entries),
	}
	for _, e := range entries {
		if d.set[e.Key] {
			return nil, duplicateKey(e.Key, d.names[e.Key], e.Name)
		}
		d.names[e.Key] = e.Name
		d.set[e.Key] = true
	}
	return d, nil
}

// MustDense is like NewDense but panics on a malformed table.
// Intended for package-level variables.
func MustDense[K Key](entries []Entry[K]) *Dense[K] {
	d, err := NewDense(entries)
	if err != nil {
		panic("enummap: " + err.Error())
	}
	return d
}

// Lookup returns the display string for k, or "" if k has no entry.
func (d *Dense[K]) Lookup(k K) string {
	name, _ := d.Get(k)
	return name
}

// Get returns the display string for k and whether k has an entry.
func (d *Dense[K]) Get(k K) (string, bool) {
	if uint64(k) >= uint64(len(d.names)) || !d.set[k] {
		return "", false
	}
	return d.names[k], true
}

// Len returns the number of entries.
func (d *Dense[K]) Len() int {
	return d.count
}

// All yields entries in ascending key order.
func (d *Dense[K]) All() iter.Seq2[K, string] {
	return func(yield func(K, string) bool) {
		for i, ok := range d.set {
			if ok && !yield(K(i), d.names[i]) {
				return
			}
		}
	}
}
