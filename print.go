package bst

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/xlab/treeprint"
)

// String renders the structure of t, one node per line as "key: value",
// with children labelled [L] or [R]. Returns an empty string if t is empty.
// This is meant for debugging and is O(n).
func (t *Tree[K, V]) String() string {
	if t.root == none {
		return ""
	}
	root := treeprint.NewWithRoot(t.label(t.root))
	t.addChildren(root, t.root)
	return root.String()
}

func (t *Tree[K, V]) label(h handle) string {
	n := t.at(h)
	return fmt.Sprintf("%v: %v", n.key, n.value)
}

func (t *Tree[K, V]) addChildren(branch treeprint.Tree, h handle) {
	n := t.at(h)
	if n.left != none {
		t.addChildren(branch.AddMetaBranch("L", t.label(n.left)), n.left)
	}
	if n.right != none {
		t.addChildren(branch.AddMetaBranch("R", t.label(n.right)), n.right)
	}
}

// Sprint returns a representation of a key/value sequence, one "key: value" line per entry.
// Keys and values are printed using the `%v` format specifier.
// Returns an empty string if the sequence is empty.
func Sprint[K, V any](seq iter.Seq2[K, V]) string {
	var s strings.Builder
	if _, err := Fprint(&s, seq); err != nil {
		panic(err)
	}
	return s.String()
}

// Fprint writes a representation of a key/value sequence to w, one "key: value" line per entry.
// Keys and values are printed using the `%v` format specifier.
// Writes nothing to w if the sequence is empty.
func Fprint[K, V any](w io.Writer, seq iter.Seq2[K, V]) (int, error) {
	n := 0
	for k, v := range seq {
		bytesWritten, err := fmt.Fprintf(w, "%v: %v\n", k, v)
		n += bytesWritten
		if err != nil {
			//nolint:wrapcheck
			return n, err
		}
	}
	return n, nil
}
