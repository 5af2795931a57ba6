package dragdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/services/collection"
)

func newCoordinator() *Coordinator {
	c := collection.New()
	c.Replace([]domain.Task{
		{ID: 1, Title: "A", Step: domain.StepTodo},
		{ID: 2, Title: "B", Step: domain.StepInProgress},
	})
	return New(c)
}

func TestAccept(t *testing.T) {
	tests := []struct {
		name   string
		taskID int
		target domain.Step
		wantOK bool
	}{
		{"different step", 1, domain.StepDone, true},
		{"same step", 1, domain.StepTodo, false},
		{"unknown task", 9, domain.StepDone, false},
		{"invalid target", 1, domain.Step("Later"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, ok := newCoordinator().Accept(tt.taskID, tt.target)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, Move{TaskID: tt.taskID, From: domain.StepTodo, To: tt.target}, move)
			}
		})
	}
}

func TestDrop_DifferentStep(t *testing.T) {
	c := newCoordinator()

	c.DragStart(2)
	c.DragOver(domain.StepDone)
	hover, ok := c.Hover()
	require.True(t, ok)
	assert.Equal(t, domain.StepDone, hover)

	move, ok := c.Drop(domain.StepDone)
	require.True(t, ok)
	assert.Equal(t, Move{TaskID: 2, From: domain.StepInProgress, To: domain.StepDone}, move)
	assert.False(t, c.Dragging())
}

func TestDrop_SameStepIsNoop(t *testing.T) {
	c := newCoordinator()

	c.DragStart(1)
	_, ok := c.Drop(domain.StepTodo)

	assert.False(t, ok)
	assert.False(t, c.Dragging(), "drop clears state even when rejected")
	_, hovering := c.Hover()
	assert.False(t, hovering)
}

func TestDrop_WithoutDrag(t *testing.T) {
	_, ok := newCoordinator().Drop(domain.StepDone)
	assert.False(t, ok)
}

func TestDragLeave(t *testing.T) {
	c := newCoordinator()
	c.DragStart(1)
	c.DragOver(domain.StepDone)
	c.DragLeave()

	_, hovering := c.Hover()
	assert.False(t, hovering)
	assert.True(t, c.Dragging(), "leaving a column keeps the payload")
}

func TestDragOver_IgnoredWhenIdle(t *testing.T) {
	c := newCoordinator()
	c.DragOver(domain.StepDone)

	_, hovering := c.Hover()
	assert.False(t, hovering)
}

func TestMoveHover(t *testing.T) {
	c := newCoordinator()
	c.DragStart(1)

	c.MoveHover(1)
	hover, _ := c.Hover()
	assert.Equal(t, domain.StepInProgress, hover)

	c.MoveHover(1)
	c.MoveHover(1)
	hover, _ = c.Hover()
	assert.Equal(t, domain.StepDone, hover, "clamped at the last column")

	c.MoveHover(-5)
	hover, _ = c.Hover()
	assert.Equal(t, domain.StepTodo, hover)
}

func TestDropOnHover(t *testing.T) {
	c := newCoordinator()
	c.DragStart(1)
	c.MoveHover(2)

	move, ok := c.DropOnHover()
	require.True(t, ok)
	assert.Equal(t, domain.StepDone, move.To)

	c.DragStart(1)
	_, ok = c.DropOnHover()
	assert.False(t, ok, "no highlighted column")
	assert.False(t, c.Dragging())
}

func TestCancel(t *testing.T) {
	c := newCoordinator()
	c.DragStart(1)
	c.MoveHover(1)
	c.Cancel()

	assert.False(t, c.Dragging())
	assert.Equal(t, 0, c.TaskID())
}
