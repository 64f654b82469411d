package tree

import (
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
Node is a node of the tree: either a *Leaf or an *Internal node.

Its Key method returns the raw key of the node: the class label of a
leaf or the attribute index of an internal node.
*/
type Node interface {
	Key() string
	node()
}

/*
Leaf is a terminal node of the tree holding the class predicted for the
samples reaching it.
*/
type Leaf struct {
	Class string
}

/*
Internal is a node of the tree that splits samples on the value of an
attribute. Its branches are keyed by the values the attribute took on the
training rows that reached the node, in the order they were first seen.
*/
type Internal struct {
	Attribute int
	branches  *linkedhashmap.Map
}

// unattached marks a branch whose subtree is still to be attached. The
// branches map reports keys holding nil values as missing.
type unattached struct{}

// NewLeaf takes a class label and returns a Leaf predicting it.
func NewLeaf(class string) *Leaf {
	return &Leaf{Class: class}
}

/*
NewInternal takes an attribute index and the values on which the node
branches and returns an Internal node whose branches are still to be
attached, or an error if no values are given or values are repeated.
*/
func NewInternal(attribute int, values []string) (*Internal, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("internal node on attribute %d needs at least one branch", attribute)
	}
	branches := linkedhashmap.New()
	for _, v := range values {
		if _, ok := branches.Get(v); ok {
			return nil, fmt.Errorf("internal node on attribute %d has repeated branch %q", attribute, v)
		}
		branches.Put(v, unattached{})
	}
	return &Internal{Attribute: attribute, branches: branches}, nil
}

func (l *Leaf) Key() string {
	return l.Class
}

func (l *Leaf) node() {}

func (n *Internal) Key() string {
	return strconv.Itoa(n.Attribute)
}

func (n *Internal) node() {}

/*
Attach takes a branch value and a child node and sets the child as the
subtree for that value. It returns an error if the node does not branch on
the value, if the branch already has a subtree or if the child is nil.
*/
func (n *Internal) Attach(value string, child Node) error {
	if child == nil {
		return fmt.Errorf("attaching nil subtree to branch %q of attribute %d", value, n.Attribute)
	}
	current, ok := n.branches.Get(value)
	if !ok {
		return fmt.Errorf("attribute %d node has no branch %q", n.Attribute, value)
	}
	if _, free := current.(unattached); !free {
		return fmt.Errorf("branch %q of attribute %d node already has a subtree", value, n.Attribute)
	}
	n.branches.Put(value, child)
	return nil
}

/*
Branch takes an attribute value and returns the subtree for it and true,
or nil and false if the node does not branch on that value or its subtree
has not been attached yet.
*/
func (n *Internal) Branch(value string) (Node, bool) {
	child, ok := n.branches.Get(value)
	if !ok {
		return nil, false
	}
	c, ok := child.(Node)
	return c, ok
}

// Values returns the branch values of the node in first-seen order.
func (n *Internal) Values() []string {
	values := make([]string, 0, n.branches.Size())
	for _, v := range n.branches.Keys() {
		values = append(values, v.(string))
	}
	return values
}

// Len returns the number of branches of the node.
func (n *Internal) Len() int {
	return n.branches.Size()
}

func (n *Internal) children() []Node {
	result := make([]Node, 0, n.branches.Size())
	for _, c := range n.branches.Values() {
		if c, ok := c.(Node); ok {
			result = append(result, c)
		}
	}
	return result
}
