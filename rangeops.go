package bst

import (
	"iter"

	"github.com/sirupsen/logrus"
)

// The range mutations below first take a snapshot of the keys within bounds,
// so mutating the tree never perturbs which keys are matched.

func (t *Tree[K, V]) rangeKeys(bounds *Bounds[K]) ([]K, error) {
	c, err := t.Range(bounds)
	if err != nil {
		return nil, err
	}
	return c.keys(), nil
}

// AssignRange sets value for every key within bounds, returning the number of keys updated.
// It returns the same errors as [Tree.Range], in which case t is unchanged.
func (t *Tree[K, V]) AssignRange(bounds *Bounds[K], value V) (int, error) {
	keys, err := t.rangeKeys(bounds)
	if err != nil {
		return 0, err
	}
	for _, k := range keys {
		t.Set(k, value)
	}
	return len(keys), nil
}

// AssignRangeValues pairs the keys within bounds, in the direction of bounds.Step, with values,
// and sets each key to its value.
// It stops when either runs out, and returns the number of keys updated.
// It returns the same errors as [Tree.Range], in which case t is unchanged.
func (t *Tree[K, V]) AssignRangeValues(bounds *Bounds[K], values iter.Seq[V]) (int, error) {
	keys, err := t.rangeKeys(bounds)
	if err != nil {
		return 0, err
	}
	count := 0
	for v := range values {
		if count == len(keys) {
			break
		}
		t.Set(keys[count], v)
		count++
	}
	return count, nil
}

// DeleteRange removes every key within bounds, returning the number of keys removed.
// It returns the same errors as [Tree.Range], in which case t is unchanged.
func (t *Tree[K, V]) DeleteRange(bounds *Bounds[K]) (int, error) {
	keys, err := t.rangeKeys(bounds)
	if err != nil {
		return 0, err
	}
	for _, k := range keys {
		if _, err := t.Delete(k); err != nil {
			// Every key came from t and nothing else mutates it.
			panic(err)
		}
	}
	if t.debugEnabled() {
		t.log.WithFields(logrus.Fields{
			"op": "deleteRange", "bounds": bounds.String(), "removed": len(keys), "size": t.size,
		}).Debug("deleted range")
	}
	return len(keys), nil
}
