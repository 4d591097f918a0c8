package set

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNodeColor = errors.New("node is neither red nor black")
	ErrRedRoot          = errors.New("root is red")
	ErrRedRed           = errors.New("red node has a red child")
	ErrBlackHeight      = errors.New("black height differs between subtrees")
	ErrOrder            = errors.New("in-order sequence is not strictly increasing")
	ErrParentLink       = errors.New("child does not point back at its parent")
	ErrSubtreeSize      = errors.New("subtree size is stale")
	ErrNodeLeak         = errors.New("arena holds unreachable nodes")
	ErrSentinel         = errors.New("sentinel node was modified")
)

// Verify checks every structural invariant of the tree and returns the first
// violation found, or nil. It is meant for tests and diagnostics.
func (s *Set) Verify() error {
	if len(s.nodes) == 0 {
		if s.root != null {
			return fmt.Errorf("%w: empty arena with root %d", ErrNodeLeak, s.root)
		}
		return nil
	}

	if sentinel := s.nodes[null]; sentinel.color != Black || sentinel.size != 0 ||
		sentinel.left != null || sentinel.right != null {
		return ErrSentinel
	}

	if s.root == null {
		if len(s.nodes) != 1 {
			return fmt.Errorf("%w: %d nodes with no root", ErrNodeLeak, len(s.nodes)-1)
		}
		return nil
	}

	root := s.nodes[s.root]
	if root.color != Black {
		return ErrRedRoot
	}

	if root.parent != null {
		return fmt.Errorf("%w: root %d has parent %d", ErrParentLink, root.value, root.parent)
	}

	_, count, err := s.verify(s.root, nil, nil)
	if err != nil {
		return err
	}

	if count != s.Length() {
		return fmt.Errorf("%w: %d reachable, %d allocated", ErrNodeLeak, count, s.Length())
	}

	return nil
}

// verify checks the subtree rooted at x, whose values must lie strictly
// between lo and hi when those are set. It returns the black height and node
// count of the subtree.
func (s *Set) verify(x int, lo, hi *int) (int, int, error) {
	if x == null {
		return 1, 0, nil
	}

	n := s.nodes[x]

	if n.color != Red && n.color != Black {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidNodeColor, n.value)
	}

	if (lo != nil && n.value <= *lo) || (hi != nil && n.value >= *hi) {
		return 0, 0, fmt.Errorf("%w: %d", ErrOrder, n.value)
	}

	if n.color == Red && (s.nodes[n.left].color == Red || s.nodes[n.right].color == Red) {
		return 0, 0, fmt.Errorf("%w: %d", ErrRedRed, n.value)
	}

	for _, child := range [2]int{n.left, n.right} {
		if child != null && s.nodes[child].parent != x {
			return 0, 0, fmt.Errorf("%w: %d", ErrParentLink, s.nodes[child].value)
		}
	}

	lh, lc, err := s.verify(n.left, lo, &n.value)
	if err != nil {
		return 0, 0, err
	}

	rh, rc, err := s.verify(n.right, &n.value, hi)
	if err != nil {
		return 0, 0, err
	}

	if lh != rh {
		return 0, 0, fmt.Errorf("%w: %d has %d on the left, %d on the right", ErrBlackHeight, n.value, lh, rh)
	}

	if n.size != lc+rc+1 {
		return 0, 0, fmt.Errorf("%w: %d records %d, has %d", ErrSubtreeSize, n.value, n.size, lc+rc+1)
	}

	if n.color == Black {
		lh++
	}

	return lh, lc + rc + 1, nil
}
