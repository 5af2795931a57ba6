package board

import "github.com/riordanpawley/pacaro/internal/domain"

// Column represents a board column with tasks
type Column struct {
	Step  domain.Step
	Tasks []domain.Task
}

// Title returns the column heading
func (c Column) Title() string {
	return string(c.Step)
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index (0-2)
	Task   int // Task index within column
}

// State is the per-frame board state that is not part of the data
type State struct {
	Cursor     Cursor
	DraggingID int         // 0 when nothing is picked up
	DropTarget domain.Step // highlighted column, empty for none
}

// ColumnsFrom builds the three columns in display order from grouped tasks
func ColumnsFrom(groups map[domain.Step][]domain.Task) []Column {
	steps := domain.Steps()
	columns := make([]Column, 0, len(steps))
	for _, step := range steps {
		columns = append(columns, Column{Step: step, Tasks: groups[step]})
	}
	return columns
}

// CreatePlaceholderData creates sample columns used by rendering tests
func CreatePlaceholderData() []Column {
	return ColumnsFrom(map[domain.Step][]domain.Task{
		domain.StepTodo: {
			{ID: 1, Title: "Implement login", Description: "Email and password form with validation", Step: domain.StepTodo},
			{ID: 2, Title: "Fix redirect bug", Description: "Users land on a blank page after login", Step: domain.StepTodo},
			{ID: 5, Title: "Add password reset flow", Description: "Send a reset link by email", Step: domain.StepTodo},
		},
		domain.StepInProgress: {
			{ID: 3, Title: "API endpoint refactor", Description: "Split the task handlers by verb", Step: domain.StepInProgress},
		},
		domain.StepDone: {
			{ID: 7, Title: "Setup CI pipeline", Description: "Run tests on every push", Step: domain.StepDone},
		},
	})
}
