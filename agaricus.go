/*
Package agaricus grows ID3 decision trees from tables of categorical values
and their class labels.
*/
package agaricus

import (
	"context"
	"fmt"

	"github.com/pbanos/agaricus/dataset"
	"github.com/pbanos/agaricus/queue"
	"github.com/pbanos/agaricus/tree"
)

/*
Build takes a context, the class labels of a training table, the table
rows, the attribute columns that may be used to split the rows (nil for all
of them) and a Variation, and returns the decision tree grown from them.

It returns ErrEmptyTrainingSet if there are no rows, an
*UnknownVariationError for an invalid variation, and an error if labels and
rows do not make a rectangular labeled table or an attribute is not one of
its columns. The given attributes slice is not modified.
*/
func Build(ctx context.Context, labels []string, data [][]string, attributes []int, variation Variation, opts ...Option) (*tree.Tree, error) {
	if !variation.valid() {
		return nil, &UnknownVariationError{variation.String()}
	}
	if len(data) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	ds, err := dataset.New(labels, data)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	var as *dataset.AttributeSet
	if attributes != nil {
		as = dataset.NewAttributeSet(attributes...)
	}
	return Grow(ctx, ds, as, variation, opts...)
}

/*
Grow takes a context, a dataset, the set of attributes that may be used to
split it (nil for all of its columns) and a Variation, and returns the
decision tree grown from them. It works on a copy of the attribute set.

Grow returns the context error if the context is cancelled before the tree
is fully grown.
*/
func Grow(ctx context.Context, ds *dataset.Dataset, attributes *dataset.AttributeSet, variation Variation, opts ...Option) (*tree.Tree, error) {
	if !variation.valid() {
		return nil, &UnknownVariationError{variation.String()}
	}
	if ds == nil || ds.Count() == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if attributes == nil {
		attributes = dataset.AllAttributes(ds.Width())
	} else {
		attributes = attributes.Clone()
	}
	if err := attributes.Check(ds.Width()); err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	b := newBuilder(variation, opts)
	q := queue.New()
	q.Push(&queue.Task{Dataset: ds, AvailableFeatures: attributes})
	return b.work(ctx, q)
}

/*
work pulls tasks from the queue and develops their nodes until the queue
is empty, attaching every node to its parent and pushing the tasks to
develop its children. It returns the tree hanging from the node developed
for the root task.
*/
func (b *builder) work(ctx context.Context, q queue.Queue) (*tree.Tree, error) {
	var root tree.Node
	for task := q.Pull(); task != nil; task = q.Pull() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, tasks, err := b.branchOut(task)
		if err != nil {
			return nil, err
		}
		if task.Parent == nil {
			root = n
		} else if err = task.Parent.Attach(task.Value, n); err != nil {
			return nil, err
		}
		q.PushAll(tasks)
	}
	return tree.New(root)
}

/*
branchOut develops the node for the given task. It returns a leaf when the
task's rows share a class or no attributes are available to split them,
and otherwise an internal node on the selected attribute along with the
tasks to develop its children, in branch order.
*/
func (b *builder) branchOut(task *queue.Task) (tree.Node, []*queue.Task, error) {
	s := task.Dataset
	labels := s.CountLabels()
	if labels.Len() == 1 {
		b.logger.Debug("pure node", "task", task.ID(), "class", labels.Keys()[0], "rows", s.Count())
		return tree.NewLeaf(labels.Keys()[0]), nil, nil
	}
	majority := labels.Majority()
	entropy := labels.Entropy()
	if task.AvailableFeatures.Empty() {
		b.logger.Debug("no attributes left", "task", task.ID(), "class", majority, "rows", s.Count())
		return tree.NewLeaf(majority), nil, nil
	}
	candidates := make([]*Partition, 0, task.AvailableFeatures.Len())
	for _, a := range task.AvailableFeatures.Values() {
		candidates = append(candidates, NewPartition(s, a, entropy))
	}
	selected := b.selectPartition(candidates)
	selected.split(s)
	b.logger.Debug("split", "task", task.ID(), "attribute", selected.Attribute, "informationGain", selected.InformationGain(), "branches", len(selected.Values), "rows", s.Count())
	n, err := tree.NewInternal(selected.Attribute, selected.Values)
	if err != nil {
		return nil, nil, err
	}
	var available *dataset.AttributeSet
	if b.sharedAttributes {
		task.AvailableFeatures.Remove(selected.Attribute)
		available = task.AvailableFeatures
	} else {
		available = task.AvailableFeatures.Without(selected.Attribute)
	}
	tasks := make([]*queue.Task, 0, len(selected.Values))
	for i, v := range selected.Values {
		tasks = append(tasks, &queue.Task{
			Parent:            n,
			Value:             v,
			Dataset:           selected.Subsets[i],
			AvailableFeatures: available,
			Depth:             task.Depth + 1,
		})
	}
	return n, tasks, nil
}
