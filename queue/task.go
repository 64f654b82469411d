package queue

import (
	"fmt"

	"github.com/pbanos/agaricus/dataset"
	"github.com/pbanos/agaricus/tree"
)

/*
Task represents the development of a tree node from the rows that reach
it. Once developed, the resulting node is attached to Parent on the Value
branch; a task without Parent develops the root of the tree.
*/
type Task struct {
	Parent            *tree.Internal
	Value             string
	Dataset           *dataset.Dataset
	AvailableFeatures *dataset.AttributeSet
	Depth             int
}

// ID returns a string identifying the task by the path to its node.
func (t *Task) ID() string {
	if t.Parent == nil {
		return "root"
	}
	return fmt.Sprintf("%d=%s@%d", t.Parent.Attribute, t.Value, t.Depth)
}
