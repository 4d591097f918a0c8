package set

// null is the arena slot of the sentinel node. Every absent child and the
// root's parent point at it. It is always black and always has size 0.
const null = 0

type node struct {
	value  int
	color  Color
	size   int // number of nodes in the subtree rooted here
	left   int
	right  int
	parent int
}

func (s *Set) init() {
	if len(s.nodes) == 0 {
		s.nodes = append(s.nodes[:0], node{color: Black})
		s.root = null
	}
}

func (s *Set) search(value int) int {
	x := s.root
	for x != null {
		n := &s.nodes[x]
		switch {
		case value < n.value:
			x = n.left
		case value > n.value:
			x = n.right
		default:
			return x
		}
	}
	return null
}

func (s *Set) insert(value int) bool {
	s.init()

	y := null
	x := s.root

	for x != null {
		y = x
		n := &s.nodes[x]
		switch {
		case value < n.value:
			x = n.left
		case value > n.value:
			x = n.right
		default:
			return false
		}
	}

	z := len(s.nodes)
	s.nodes = append(s.nodes, node{
		value:  value,
		color:  Red,
		size:   1,
		left:   null,
		right:  null,
		parent: y,
	})

	switch {
	case y == null:
		s.root = z
	case value < s.nodes[y].value:
		s.nodes[y].left = z
	default:
		s.nodes[y].right = z
	}

	for p := y; p != null; p = s.nodes[p].parent {
		s.nodes[p].size++
	}

	s.fixInsert(z)

	return true
}

func (s *Set) fixInsert(z int) {
	for s.nodes[s.nodes[z].parent].color == Red {
		p := s.nodes[z].parent
		g := s.nodes[p].parent

		if p == s.nodes[g].left {
			u := s.nodes[g].right // uncle

			if s.nodes[u].color == Red {
				s.nodes[p].color = Black
				s.nodes[u].color = Black
				s.nodes[g].color = Red
				z = g
				continue
			}

			if z == s.nodes[p].right { // inner grandchild, rotate it outward
				z = p
				s.rotateLeft(z)
				p = s.nodes[z].parent
			}

			s.nodes[p].color = Black
			s.nodes[g].color = Red
			s.rotateRight(g)
		} else {
			u := s.nodes[g].left // uncle

			if s.nodes[u].color == Red {
				s.nodes[p].color = Black
				s.nodes[u].color = Black
				s.nodes[g].color = Red
				z = g
				continue
			}

			if z == s.nodes[p].left { // inner grandchild, rotate it outward
				z = p
				s.rotateRight(z)
				p = s.nodes[z].parent
			}

			s.nodes[p].color = Black
			s.nodes[g].color = Red
			s.rotateLeft(g)
		}
	}

	s.nodes[s.root].color = Black
}

func (s *Set) delete(z int) {
	y := z
	if s.nodes[z].left != null && s.nodes[z].right != null {
		y = s.minimum(s.nodes[z].right)
	}

	// y is the node whose position disappears from the tree.
	for p := s.nodes[y].parent; p != null; p = s.nodes[p].parent {
		s.nodes[p].size--
	}

	var x int
	yOriginalColor := s.nodes[y].color

	switch {
	case s.nodes[z].left == null: // no children or only right
		x = s.nodes[z].right
		s.transplant(z, x)
	case s.nodes[z].right == null: // only left child
		x = s.nodes[z].left
		s.transplant(z, x)
	default: // both children
		x = s.nodes[y].right

		if s.nodes[y].parent == z {
			s.nodes[x].parent = y
		} else {
			s.transplant(y, x)
			s.nodes[y].right = s.nodes[z].right
			s.nodes[s.nodes[y].right].parent = y
		}

		s.transplant(z, y)

		s.nodes[y].left = s.nodes[z].left
		s.nodes[s.nodes[y].left].parent = y
		s.nodes[y].color = s.nodes[z].color
		s.nodes[y].size = s.nodes[z].size
	}

	if yOriginalColor == Black {
		s.fixDelete(x)
	}

	s.free(z)
}

func (s *Set) fixDelete(x int) {
	for x != s.root && s.nodes[x].color == Black {
		p := s.nodes[x].parent

		if x == s.nodes[p].left {
			w := s.nodes[p].right

			if s.nodes[w].color == Red { // case 1
				s.nodes[w].color = Black
				s.nodes[p].color = Red
				s.rotateLeft(p)
				w = s.nodes[p].right
			}

			if s.nodes[s.nodes[w].left].color == Black && s.nodes[s.nodes[w].right].color == Black { // case 2
				s.nodes[w].color = Red
				x = p
				continue
			}

			if s.nodes[s.nodes[w].right].color == Black { // case 3
				s.nodes[s.nodes[w].left].color = Black
				s.nodes[w].color = Red
				s.rotateRight(w)
				w = s.nodes[p].right
			}

			// case 4
			s.nodes[w].color = s.nodes[p].color
			s.nodes[p].color = Black
			s.nodes[s.nodes[w].right].color = Black
			s.rotateLeft(p)
			x = s.root
		} else {
			w := s.nodes[p].left

			if s.nodes[w].color == Red { // case 1
				s.nodes[w].color = Black
				s.nodes[p].color = Red
				s.rotateRight(p)
				w = s.nodes[p].left
			}

			if s.nodes[s.nodes[w].right].color == Black && s.nodes[s.nodes[w].left].color == Black { // case 2
				s.nodes[w].color = Red
				x = p
				continue
			}

			if s.nodes[s.nodes[w].left].color == Black { // case 3
				s.nodes[s.nodes[w].right].color = Black
				s.nodes[w].color = Red
				s.rotateLeft(w)
				w = s.nodes[p].left
			}

			// case 4
			s.nodes[w].color = s.nodes[p].color
			s.nodes[p].color = Black
			s.nodes[s.nodes[w].left].color = Black
			s.rotateRight(p)
			x = s.root
		}
	}

	s.nodes[x].color = Black
}

// transplant puts the subtree rooted at v where the subtree rooted at u was.
// v may be the sentinel, in which case only its parent link is written.
func (s *Set) transplant(u, v int) {
	p := s.nodes[u].parent

	switch {
	case p == null: // u is root
		s.root = v
	case u == s.nodes[p].left:
		s.nodes[p].left = v
	default:
		s.nodes[p].right = v
	}

	s.nodes[v].parent = p
}

func (s *Set) rotateLeft(x int) {
	y := s.nodes[x].right

	s.nodes[x].right = s.nodes[y].left
	if s.nodes[y].left != null {
		s.nodes[s.nodes[y].left].parent = x
	}

	s.transplant(x, y)

	s.nodes[y].left = x
	s.nodes[x].parent = y

	s.nodes[y].size = s.nodes[x].size
	s.nodes[x].size = s.nodes[s.nodes[x].left].size + s.nodes[s.nodes[x].right].size + 1
}

func (s *Set) rotateRight(x int) {
	y := s.nodes[x].left

	s.nodes[x].left = s.nodes[y].right
	if s.nodes[y].right != null {
		s.nodes[s.nodes[y].right].parent = x
	}

	s.transplant(x, y)

	s.nodes[y].right = x
	s.nodes[x].parent = y

	s.nodes[y].size = s.nodes[x].size
	s.nodes[x].size = s.nodes[s.nodes[x].left].size + s.nodes[s.nodes[x].right].size + 1
}

// free releases slot z. The last node in the arena is moved into the hole so
// the arena only ever holds live nodes.
func (s *Set) free(z int) {
	last := len(s.nodes) - 1

	if z != last {
		moved := s.nodes[last]
		s.nodes[z] = moved

		switch {
		case moved.parent == null:
			s.root = z
		case s.nodes[moved.parent].left == last:
			s.nodes[moved.parent].left = z
		default:
			s.nodes[moved.parent].right = z
		}

		if moved.left != null {
			s.nodes[moved.left].parent = z
		}

		if moved.right != null {
			s.nodes[moved.right].parent = z
		}
	}

	s.nodes[last] = node{}
	s.nodes = s.nodes[:last]
	s.nodes[null].parent = null
}

func (s *Set) minimum(x int) int {
	for s.nodes[x].left != null {
		x = s.nodes[x].left
	}
	return x
}

// next returns the in-order successor of x, or null. It follows parent links
// and allocates nothing.
func (s *Set) next(x int) int {
	if r := s.nodes[x].right; r != null {
		return s.minimum(r)
	}

	p := s.nodes[x].parent
	for p != null && x == s.nodes[p].right {
		x = p
		p = s.nodes[p].parent
	}

	return p
}

// selectAt returns the slot holding the element of rank pos.
func (s *Set) selectAt(pos int) int {
	x := s.root
	for x != null {
		l := s.nodes[s.nodes[x].left].size
		switch {
		case pos < l:
			x = s.nodes[x].left
		case pos == l:
			return x
		default:
			pos -= l + 1
			x = s.nodes[x].right
		}
	}
	return null
}
