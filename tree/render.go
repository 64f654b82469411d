package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	ppds "github.com/shivamMg/ppds/tree"
)

const (
	indentMarker = "|   "
	nodeMarker   = "+---"
)

/*
Render takes an io.Writer and optional display names and writes the tree
onto the writer, one node per line, parents before their children. Every
line is indented with one marker per level of depth and shows the node key
followed by the node's branch values between parentheses, e.g.

	+---4 (a,l,n)
	|   +---e ()

Keys and branch values with an entry in the display names are shown with
their human-readable name instead.
*/
func (t *Tree) Render(w io.Writer, names *DisplayNames) error {
	bw := bufio.NewWriter(w)
	err := t.Traverse(func(n Node, depth int) error {
		_, err := fmt.Fprintln(bw, renderLine(n, depth, names))
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func (t *Tree) String() string {
	var sb strings.Builder
	// writes to a strings.Builder never fail
	_ = t.Render(&sb, nil)
	return sb.String()
}

func renderLine(n Node, depth int, names *DisplayNames) string {
	var branches []string
	if in, ok := n.(*Internal); ok {
		for _, v := range in.Values() {
			branches = append(branches, names.valueLabel(n, v))
		}
	}
	return fmt.Sprintf("%s%s%s (%s)", strings.Repeat(indentMarker, depth), nodeMarker, names.nodeLabel(n), strings.Join(branches, ","))
}

/*
RenderBoxed takes optional display names and returns the tree drawn
horizontally with box-drawing characters. Every node but the root is
prefixed by the branch value leading to it.
*/
func (t *Tree) RenderBoxed(names *DisplayNames) string {
	return ppds.SprintHr(newBoxNode(t.root, names))
}

type boxNode struct {
	label    string
	children []ppds.Node
}

func newBoxNode(n Node, names *DisplayNames) *boxNode {
	bn := &boxNode{label: names.nodeLabel(n)}
	if in, ok := n.(*Internal); ok {
		for _, v := range in.Values() {
			child, _ := in.Branch(v)
			cbn := newBoxNode(child, names)
			cbn.label = fmt.Sprintf("%s: %s", names.valueLabel(n, v), cbn.label)
			bn.children = append(bn.children, cbn)
		}
	}
	return bn
}

func (bn *boxNode) Data() interface{} {
	return bn.label
}

func (bn *boxNode) Children() []ppds.Node {
	return bn.children
}
