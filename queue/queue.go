package queue

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

/*
Queue holds the tasks to develop tree nodes that are pending while a tree
is grown. Tasks are pulled in last-in first-out order, so that pushing the
subtasks of a node in reverse branch order makes the tree grow depth first
with branches in order, the same way a recursive development would.
*/
type Queue interface {
	// Push takes a task and stores it as pending.
	Push(*Task)
	// PushAll takes tasks in branch order and stores them so that
	// the first one is the next to be pulled.
	PushAll([]*Task)
	// Pull returns the next pending task, or nil if there is none.
	Pull() *Task
	// Count returns the number of pending tasks.
	Count() int
}

type memQueue struct {
	pending *arraystack.Stack
}

// New returns an empty queue backed by the process memory.
func New() Queue {
	return &memQueue{arraystack.New()}
}

func (mq *memQueue) Push(t *Task) {
	mq.pending.Push(t)
}

func (mq *memQueue) PushAll(tasks []*Task) {
	for i := len(tasks) - 1; i >= 0; i-- {
		mq.pending.Push(tasks[i])
	}
}

func (mq *memQueue) Pull() *Task {
	t, ok := mq.pending.Pop()
	if !ok {
		return nil
	}
	return t.(*Task)
}

func (mq *memQueue) Count() int {
	return mq.pending.Size()
}
