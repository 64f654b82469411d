/*
Package tree provides the decision tree grown by agaricus: its nodes, the
classification of samples and its rendering as text.
*/
package tree

import (
	"fmt"
)

// Unclassifiable is the text reported for samples a tree cannot classify.
const Unclassifiable = "Cannot classify"

// Tree represents a decision tree, composed of nodes hanging from a root.
type Tree struct {
	root Node
}

/*
New takes the root node of a tree and returns the tree, or an error if the
root is nil or any internal node under it has a branch without a subtree.
*/
func New(root Node) (*Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("tree has no root node")
	}
	err := traverse(root, 0, func(n Node, _ int) error {
		in, ok := n.(*Internal)
		if !ok {
			return nil
		}
		for _, v := range in.Values() {
			if _, ok := in.Branch(v); !ok {
				return fmt.Errorf("branch %q of attribute %d node has no subtree", v, in.Attribute)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Tree{root}, nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return t.root
}

/*
Classify takes a sample, the values of its attributes indexed like the
columns of the training data, and returns the class the tree predicts for
it and true. If at some node the sample's value for the node's attribute
was never seen during training, or the sample has no value at that index,
it returns an empty string and false.
*/
func (t *Tree) Classify(sample []string) (string, bool) {
	n := t.root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Class, true
		case *Internal:
			if node.Attribute >= len(sample) {
				return "", false
			}
			child, ok := node.Branch(sample[node.Attribute])
			if !ok {
				return "", false
			}
			n = child
		default:
			return "", false
		}
	}
}

/*
Depth returns the number of internal nodes on the longest path from the
root to a leaf. A tree made of a single leaf has depth 0.
*/
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(func(n Node, d int) error {
		if _, ok := n.(*Leaf); ok && d > depth {
			depth = d
		}
		return nil
	})
	return depth
}

// Leaves returns the number of leaves of the tree.
func (t *Tree) Leaves() int {
	var leaves int
	t.Traverse(func(n Node, _ int) error {
		if _, ok := n.(*Leaf); ok {
			leaves++
		}
		return nil
	})
	return leaves
}

/*
Traverse takes a function and calls it with every node of the tree and its
depth, parents before their children and children in branch order. If the
function returns an error the traversing is aborted and the error returned.
*/
func (t *Tree) Traverse(f func(Node, int) error) error {
	return traverse(t.root, 0, f)
}

func traverse(n Node, depth int, f func(Node, int) error) error {
	err := f(n, depth)
	if err != nil {
		return err
	}
	in, ok := n.(*Internal)
	if !ok {
		return nil
	}
	for _, c := range in.children() {
		err = traverse(c, depth+1, f)
		if err != nil {
			return err
		}
	}
	return nil
}
