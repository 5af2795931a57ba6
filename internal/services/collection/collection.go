// Package collection holds the in-memory list of tasks shown on the board.
package collection

import (
	"github.com/riordanpawley/pacaro/internal/domain"
)

// Collection mirrors the last successful list response. Local step moves
// are provisional until the next reload replaces them.
//
// It is owned by the bubbletea update loop and is not safe for concurrent use.
type Collection struct {
	tasks  []domain.Task
	loaded bool
}

// New creates an empty, not yet loaded collection
func New() *Collection {
	return &Collection{tasks: []domain.Task{}}
}

// Replace swaps the whole list for a copy of tasks
func (c *Collection) Replace(tasks []domain.Task) {
	next := make([]domain.Task, len(tasks))
	copy(next, tasks)
	c.tasks = next
	c.loaded = true
}

// ApplyStepMove changes the step of one task locally.
// Returns false when no task has that id.
func (c *Collection) ApplyStepMove(id int, step domain.Step) bool {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i].Step = step
			return true
		}
	}
	return false
}

// GroupByStep partitions the tasks by step. All three steps are present
// as keys and each group keeps the collection order.
func (c *Collection) GroupByStep() map[domain.Step][]domain.Task {
	groups := make(map[domain.Step][]domain.Task, len(domain.Steps()))
	for _, step := range domain.Steps() {
		groups[step] = []domain.Task{}
	}
	for _, t := range c.tasks {
		if _, ok := groups[t.Step]; !ok {
			continue
		}
		groups[t.Step] = append(groups[t.Step], t)
	}
	return groups
}

// Tasks returns a copy of the current list
func (c *Collection) Tasks() []domain.Task {
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Find returns the task with the given id
func (c *Collection) Find(id int) (domain.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// StepOf returns the current step of a task
func (c *Collection) StepOf(id int) (domain.Step, bool) {
	t, ok := c.Find(id)
	if !ok {
		return "", false
	}
	return t.Step, true
}

// Len returns the number of tasks
func (c *Collection) Len() int {
	return len(c.tasks)
}

// Loaded reports whether at least one list response has been applied
func (c *Collection) Loaded() bool {
	return c.loaded
}
