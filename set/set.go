package set

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/rbset/safepool"
)

var ErrOutOfRange = errors.New("position out of range")

var bufPool = safepool.NewPool(func() *bytes.Buffer {
	return new(bytes.Buffer)
})

// Set is an ordered set of integers backed by a red-black tree. Nodes live in
// an arena and refer to each other by slot index, so a Set never hands out
// references to its nodes.
//
// The zero value is an empty set ready to use. A Set is not safe for
// concurrent use; callers sharing one across goroutines must serialize
// access themselves.
type Set struct {
	nodes []node
	root  int
}

// Ensure Set satisfies set.Interface at compile-time.
var (
	_ Interface              = (*Set)(nil)
	_ zapcore.ArrayMarshaler = (*Set)(nil)
)

// New returns a set initialized with the provided items. Duplicates are
// ignored.
func New(items ...int) *Set {
	s := &Set{}

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Clone returns a structurally independent copy of the set. Both sets can be
// mutated afterwards without affecting each other.
func (s *Set) Clone() *Set {
	clone := &Set{
		nodes: slices.Clone(s.nodes),
		root:  s.root,
	}

	if len(clone.nodes) > 0 {
		clone.nodes[null] = node{color: Black}
	}

	return clone
}

// Assign replaces the contents of the set with a copy of other. The copy is
// built before anything is swapped in, so s is untouched until it succeeds.
func (s *Set) Assign(other *Set) {
	if s == other {
		return
	}

	clone := other.Clone()
	s.nodes, clone.nodes = clone.nodes, s.nodes
	s.root, clone.root = clone.root, s.root
}

// Add an item to the set. It returns false if the item is already present.
func (s *Set) Add(item int) bool {
	return s.insert(item)
}

// Remove an item from the set. It returns false if the item is not present.
func (s *Set) Remove(item int) bool {
	z := s.search(item)
	if z == null {
		return false
	}

	s.delete(z)

	return true
}

// Clear removes all items from the set.
func (s *Set) Clear() bool {
	s.nodes = nil
	s.root = null

	return s.Length() == 0
}

// Contains determines whether the provided items are in the set.
func (s *Set) Contains(items ...int) bool {
	for _, item := range items {
		if s.search(item) == null {
			return false
		}
	}

	return true
}

// Length returns the number of items in the set.
func (s *Set) Length() int {
	if len(s.nodes) == 0 {
		return 0
	}

	return len(s.nodes) - 1
}

// At returns the item at the zero-based position pos in increasing order.
func (s *Set) At(pos int) (int, error) {
	if pos < 0 || pos >= s.Length() {
		return 0, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, s.Length())
	}

	return s.nodes[s.selectAt(pos)].value, nil
}

// ForEach iterates over items in increasing order and executes the provided
// function against each item until it returns false. The set must not be
// modified from within fn.
func (s *Set) ForEach(fn func(int) bool) {
	if s.root == null {
		return
	}

	for x := s.minimum(s.root); x != null; x = s.next(x) {
		if !fn(s.nodes[x].value) {
			return
		}
	}
}

// String provides a string representation of the set, such as "{ 1, 3, 5 }".
func (s *Set) String() string {
	buf := bufPool.Get()
	defer func() {
		buf.Reset()
		bufPool.Put(buf)
	}()

	s.format(buf)

	return buf.String()
}

// Display writes the string representation of the set followed by a newline.
func (s *Set) Display(w io.Writer) error {
	buf := bufPool.Get()
	defer func() {
		buf.Reset()
		bufPool.Put(buf)
	}()

	s.format(buf)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

func (s *Set) format(buf *bytes.Buffer) {
	buf.WriteString("{ ")

	first := true
	s.ForEach(func(item int) bool {
		if !first {
			buf.WriteString(", ")
		}
		first = false

		buf.WriteString(strconv.Itoa(item))
		return true
	})

	buf.WriteString(" }")
}

// ToSlice returns the set as a slice in increasing order.
func (s *Set) ToSlice() []int {
	items := make([]int, 0, s.Length())

	s.ForEach(func(item int) bool {
		items = append(items, item)
		return true
	})

	return items
}

// MarshalLogArray lets a set be logged with zap.Array.
func (s *Set) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	s.ForEach(func(item int) bool {
		enc.AppendInt(item)
		return true
	})

	return nil
}

// IsSuperSet determines if every item in the provided set is in this set.
func (s *Set) IsSuperSet(other Interface) bool {
	if other.Length() > s.Length() {
		return false
	}

	return containsAll(s, other)
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *Set) IsSubSet(other Interface) bool {
	if s.Length() > other.Length() {
		return false
	}

	return containsAll(other, s)
}

// Equal determines if the two sets are equal.
//
// Note: If both sets have the same number of items and every item of this set
// is in the other one, they're equal.
func (s *Set) Equal(other Interface) bool {
	if s.Length() != other.Length() {
		return false
	}

	return containsAll(other, s)
}

// NotEqual is the negation of Equal.
func (s *Set) NotEqual(other Interface) bool {
	return !s.Equal(other)
}

// Intersect returns a new set containing only the items that exist in both
// sets.
func (s *Set) Intersect(other Interface) *Set {
	result := New()

	// Walk the smaller set and probe the bigger one.
	var small, big Interface = s, other
	if other.Length() < s.Length() {
		small, big = other, s
	}

	small.ForEach(func(item int) bool {
		if big.Contains(item) {
			result.Add(item)
		}
		return true
	})

	return result
}

// Union returns a new set with every item of both sets.
func (s *Set) Union(other Interface) *Set {
	result := New()

	for _, src := range []Interface{s, other} {
		src.ForEach(func(item int) bool {
			result.Add(item)
			return true
		})
	}

	return result
}

// Difference returns a new set with items contained in this set that are not
// present in the provided set.
func (s *Set) Difference(other Interface) *Set {
	result := New()

	s.ForEach(func(item int) bool {
		if !other.Contains(item) {
			result.Add(item)
		}
		return true
	})

	return result
}

// SymmetricDifference returns a new set with all items which are in either
// set, but not both.
func (s *Set) SymmetricDifference(other Interface) *Set {
	result := s.Difference(other)

	other.ForEach(func(item int) bool {
		if !s.Contains(item) {
			result.Add(item)
		}
		return true
	})

	return result
}

// containsAll reports whether every item of sub is in super.
func containsAll(super, sub Interface) bool {
	ok := true

	sub.ForEach(func(item int) bool {
		ok = super.Contains(item)
		return ok
	})

	return ok
}
