// Package domain contains core business types for the task board.
package domain

import (
	"fmt"
	"strings"
)

// Task is a card on the board as returned by the tasks API
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Step        Step   `json:"step" yaml:"step"`
	User        string `json:"user" yaml:"user"`
}

// Input returns the editable fields of the task
func (t Task) Input() TaskInput {
	return TaskInput{
		Title:       t.Title,
		Description: t.Description,
		Step:        t.Step,
	}
}

// TaskInput is the body sent on create and full update.
// All three fields are always sent, the API has no partial update for them.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Step        Step   `json:"step"`
}

// Step represents the workflow stage of a task
type Step string

const (
	StepTodo       Step = "To do"
	StepInProgress Step = "In progress"
	StepDone       Step = "Done"
)

// DefaultStep is the stage new tasks start in
const DefaultStep = StepTodo

// Steps returns the stages in display order
func Steps() []Step {
	return []Step{StepTodo, StepInProgress, StepDone}
}

// ParseStep converts a string into a Step.
// Matching ignores case and surrounding whitespace.
func ParseStep(s string) (Step, error) {
	for _, step := range Steps() {
		if strings.EqualFold(strings.TrimSpace(s), string(step)) {
			return step, nil
		}
	}
	return "", fmt.Errorf("invalid step %q: must be one of %q, %q, %q", s, StepTodo, StepInProgress, StepDone)
}

// Valid reports whether s is one of the three stages
func (s Step) Valid() bool {
	return s == StepTodo || s == StepInProgress || s == StepDone
}

// Column returns the board column index for this step
func (s Step) Column() int {
	switch s {
	case StepTodo:
		return 0
	case StepInProgress:
		return 1
	case StepDone:
		return 2
	default:
		return 0
	}
}

// StepAt returns the step shown in the given column
func StepAt(column int) (Step, bool) {
	steps := Steps()
	if column < 0 || column >= len(steps) {
		return "", false
	}
	return steps[column], true
}

// Label returns the status text shown on a card
func (s Step) Label() string {
	if s == StepDone {
		return "Completed!"
	}
	return string(s)
}

// String returns the display string
func (s Step) String() string {
	return string(s)
}
