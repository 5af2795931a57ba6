// Package navigation keeps the board cursor. The cursor follows a task id,
// so it stays on the same card across reloads and step moves.
package navigation

import (
	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/ui/board"
)

// cursor is the selected task plus the column to fall back to when that
// task is gone or no task is selected
type cursor struct {
	taskID int
	column int
}

// locate resolves the cursor against columns. ok is false when the resolved
// column has no cards.
func (c cursor) locate(columns []board.Column) (col, row int, ok bool) {
	if c.taskID != 0 {
		for ci, column := range columns {
			for ri, task := range column.Tasks {
				if task.ID == c.taskID {
					return ci, ri, true
				}
			}
		}
	}

	col = c.column
	if col < 0 || col >= len(columns) {
		col = 0
	}
	return col, 0, col < len(columns) && len(columns[col].Tasks) > 0
}

// Service moves the cursor over the three board columns
type Service struct {
	cur cursor
}

// NewService starts with nothing selected in the first column
func NewService() *Service {
	return &Service{}
}

// GetCurrentTask returns the card under the cursor
func (s *Service) GetCurrentTask(columns []board.Column) (domain.Task, bool) {
	col, row, ok := s.cur.locate(columns)
	if !ok {
		return domain.Task{}, false
	}
	return columns[col].Tasks[row], true
}

// BoardCursor converts the tracked task into a render position
func (s *Service) BoardCursor(columns []board.Column) board.Cursor {
	col, row, _ := s.cur.locate(columns)
	return board.Cursor{Column: col, Task: row}
}

// MoveDown selects the next card in the column, stopping at the last one
func (s *Service) MoveDown(columns []board.Column) {
	s.moveRow(columns, 1)
}

// MoveUp selects the previous card in the column, stopping at the first one
func (s *Service) MoveUp(columns []board.Column) {
	s.moveRow(columns, -1)
}

// MoveLeft goes to the previous column
func (s *Service) MoveLeft(columns []board.Column) {
	col, _, _ := s.cur.locate(columns)
	s.GotoColumn(columns, col-1)
}

// MoveRight goes to the next column
func (s *Service) MoveRight(columns []board.Column) {
	col, _, _ := s.cur.locate(columns)
	s.GotoColumn(columns, col+1)
}

// GotoTop selects the first card of the current column
func (s *Service) GotoTop(columns []board.Column) {
	col, _, ok := s.cur.locate(columns)
	if ok {
		s.selectAt(columns, col, 0)
	}
}

// GotoBottom selects the last card of the current column
func (s *Service) GotoBottom(columns []board.Column) {
	col, _, ok := s.cur.locate(columns)
	if ok {
		s.selectAt(columns, col, len(columns[col].Tasks)-1)
	}
}

// GotoFirstColumn jumps to the To do column
func (s *Service) GotoFirstColumn(columns []board.Column) {
	s.GotoColumn(columns, 0)
}

// GotoLastColumn jumps to the Done column
func (s *Service) GotoLastColumn(columns []board.Column) {
	s.GotoColumn(columns, len(columns)-1)
}

// GotoColumn jumps to column index idx, clamped to the board. The row is
// kept when the target column is long enough, otherwise its last card is
// selected. An empty target column leaves nothing selected.
func (s *Service) GotoColumn(columns []board.Column, idx int) {
	if len(columns) == 0 {
		return
	}
	idx = clamp(idx, 0, len(columns)-1)
	_, row, _ := s.cur.locate(columns)

	s.cur = cursor{column: idx}
	if n := len(columns[idx].Tasks); n > 0 {
		s.selectAt(columns, idx, clamp(row, 0, n-1))
	}
}

// SelectTask points the cursor at taskID, falling back to column when the
// task is not on the board
func (s *Service) SelectTask(taskID int, column int) {
	s.cur = cursor{taskID: taskID, column: column}
}

// JumpToTaskByID selects taskID wherever it is on the board. It reports
// false and leaves the cursor alone when the task is not shown.
func (s *Service) JumpToTaskByID(columns []board.Column, taskID int) bool {
	prev := s.cur
	s.cur = cursor{taskID: taskID, column: prev.column}
	col, row, ok := s.cur.locate(columns)
	if !ok || columns[col].Tasks[row].ID != taskID {
		s.cur = prev
		return false
	}
	s.cur.column = col
	return true
}

func (s *Service) moveRow(columns []board.Column, delta int) {
	col, row, ok := s.cur.locate(columns)
	if !ok {
		return
	}
	s.selectAt(columns, col, clamp(row+delta, 0, len(columns[col].Tasks)-1))
}

func (s *Service) selectAt(columns []board.Column, col, row int) {
	s.cur = cursor{taskID: columns[col].Tasks[row].ID, column: col}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
