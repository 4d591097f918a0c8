package set

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const printIndent = 4

var nodeColor = map[Color]*color.Color{
	Black: color.New(color.FgHiBlack, color.Bold),
	Red:   color.New(color.FgRed, color.Bold),
}

// Fprint writes a sideways diagram of the tree to w: one node per line,
// indented by depth, with the right subtree above its parent. Colors are
// emitted only when fatih/color has them enabled.
func (s *Set) Fprint(w io.Writer) error {
	buf := bufPool.Get()
	defer func() {
		buf.Reset()
		bufPool.Put(buf)
	}()

	if s.root != null {
		s.print(buf, s.root, 0)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

type stringWriter interface {
	WriteString(string) (int, error)
}

func (s *Set) print(w stringWriter, x, depth int) {
	n := s.nodes[x]

	if n.right != null {
		s.print(w, n.right, depth+1)
	}

	w.WriteString(strings.Repeat(" ", depth*printIndent))
	w.WriteString(nodeColor[n.color].Sprint(strconv.Itoa(n.value) + " " + n.color.String()))
	w.WriteString("\n")

	if n.left != null {
		s.print(w, n.left, depth+1)
	}
}
