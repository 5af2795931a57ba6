// Package dragdrop turns pick-up, hover and drop gestures into step moves.
//
// The coordinator does not know about input devices: the board feeds it
// from mouse events or from the keyboard, and it decides whether a drop
// becomes a move.
package dragdrop

import (
	"github.com/riordanpawley/pacaro/internal/domain"
)

// Capability is the drag-and-drop surface the board drives
type Capability interface {
	DragStart(taskID int)
	DragOver(target domain.Step)
	DragLeave()
	Drop(target domain.Step) (Move, bool)
}

// StepLookup resolves the current step of a task
type StepLookup interface {
	StepOf(id int) (domain.Step, bool)
}

// Move is an accepted drop: the task should go from From to To
type Move struct {
	TaskID int
	From   domain.Step
	To     domain.Step
}

// Coordinator holds the payload of the drag in progress
type Coordinator struct {
	lookup StepLookup

	dragging bool
	taskID   int
	hover    domain.Step
}

var _ Capability = (*Coordinator)(nil)

// New creates a coordinator resolving steps through lookup
func New(lookup StepLookup) *Coordinator {
	return &Coordinator{lookup: lookup}
}

// DragStart records the dragged task id
func (c *Coordinator) DragStart(taskID int) {
	c.dragging = true
	c.taskID = taskID
	c.hover = ""
}

// DragOver marks target as the highlighted drop column
func (c *Coordinator) DragOver(target domain.Step) {
	if !c.dragging || !target.Valid() {
		return
	}
	c.hover = target
}

// DragLeave clears the highlight
func (c *Coordinator) DragLeave() {
	c.hover = ""
}

// Drop ends the drag over target. The move is returned only when the
// task currently sits in another step. State is always cleared.
func (c *Coordinator) Drop(target domain.Step) (Move, bool) {
	if !c.dragging {
		return Move{}, false
	}
	id := c.taskID
	c.Cancel()
	return c.Accept(id, target)
}

// DropOnHover drops over the highlighted column, if any
func (c *Coordinator) DropOnHover() (Move, bool) {
	if c.hover == "" {
		c.Cancel()
		return Move{}, false
	}
	return c.Drop(c.hover)
}

// Accept decides whether moving taskID to target is a real change
func (c *Coordinator) Accept(taskID int, target domain.Step) (Move, bool) {
	if !target.Valid() {
		return Move{}, false
	}
	from, ok := c.lookup.StepOf(taskID)
	if !ok || from == target {
		return Move{}, false
	}
	return Move{TaskID: taskID, From: from, To: target}, true
}

// MoveHover shifts the highlighted column by delta, clamped to the board
func (c *Coordinator) MoveHover(delta int) {
	if !c.dragging {
		return
	}
	col := 0
	if c.hover != "" {
		col = c.hover.Column()
	} else if from, ok := c.lookup.StepOf(c.taskID); ok {
		col = from.Column()
	}

	col += delta
	steps := domain.Steps()
	if col < 0 {
		col = 0
	}
	if col >= len(steps) {
		col = len(steps) - 1
	}
	c.hover = steps[col]
}

// Cancel abandons the drag without a move
func (c *Coordinator) Cancel() {
	c.dragging = false
	c.taskID = 0
	c.hover = ""
}

// Dragging reports whether a drag is in progress
func (c *Coordinator) Dragging() bool {
	return c.dragging
}

// TaskID returns the dragged task id
func (c *Coordinator) TaskID() int {
	return c.taskID
}

// Hover returns the highlighted drop column
func (c *Coordinator) Hover() (domain.Step, bool) {
	return c.hover, c.hover != ""
}
