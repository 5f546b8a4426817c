package bst_test

import (
	"iter"

	"github.com/google/btree"
	bst "github.com/squillero/pythonic-bst"
)

// reference implements bst.OrderedMap[int, int] on top of a B-tree.
// This serves as an expected value to compare against a bst.Tree while testing.
type reference struct {
	entries *btree.BTreeG[entry]
}

func newReference() *reference {
	return &reference{btree.NewG(8, func(a, b entry) bool {
		return a.Key < b.Key
	})}
}

func newReferenceOf(keys ...int) *reference {
	ref := newReference()
	for _, k := range keys {
		ref.Set(k, k)
	}
	return ref
}

var _ bst.OrderedMap[int, int] = (*reference)(nil)

func (r *reference) Set(key, value int) (int, bool) {
	prev, ok := r.entries.ReplaceOrInsert(entry{key, value})
	return prev.Value, ok
}

func (r *reference) Get(key int) (int, error) {
	e, ok := r.entries.Get(entry{Key: key})
	if !ok {
		return 0, bst.ErrKeyNotFound
	}
	return e.Value, nil
}

func (r *reference) Delete(key int) (int, error) {
	e, ok := r.entries.Delete(entry{Key: key})
	if !ok {
		return 0, bst.ErrKeyNotFound
	}
	return e.Value, nil
}

func (r *reference) Contains(key int) bool {
	return r.entries.Has(entry{Key: key})
}

func (r *reference) Len() int {
	return r.entries.Len()
}

func (r *reference) Min() (int, int, bool) {
	e, ok := r.entries.Min()
	return e.Key, e.Value, ok
}

func (r *reference) Max() (int, int, bool) {
	e, ok := r.entries.Max()
	return e.Key, e.Value, ok
}

func (r *reference) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		r.entries.Ascend(func(e entry) bool {
			return yield(e.Key, e.Value)
		})
	}
}

func (r *reference) Backward() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		r.entries.Descend(func(e entry) bool {
			return yield(e.Key, e.Value)
		})
	}
}

// Range returns the entries within bounds, with the same errors as bst.Tree.Range.
func (r *reference) Range(bounds *Bounds) ([]entry, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	begin, hasBegin := bounds.Begin.Get()
	if hasBegin && !r.Contains(begin) {
		return nil, bst.ErrKeyNotFound
	}
	end, hasEnd := bounds.End.Get()
	entries := []entry{}
	if bounds.IsReverse() {
		visit := func(e entry) bool {
			if hasEnd && e.Key <= end {
				return false
			}
			entries = append(entries, e)
			return true
		}
		if hasBegin {
			r.entries.DescendLessOrEqual(entry{Key: begin}, visit)
		} else {
			r.entries.Descend(visit)
		}
		return entries, nil
	}
	visit := func(e entry) bool {
		if hasEnd && e.Key >= end {
			return false
		}
		entries = append(entries, e)
		return true
	}
	if hasBegin {
		r.entries.AscendGreaterOrEqual(entry{Key: begin}, visit)
	} else {
		r.entries.Ascend(visit)
	}
	return entries, nil
}
