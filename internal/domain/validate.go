package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Field length limits, counted in characters
const (
	TitleMinLen       = 4
	TitleMaxLen       = 30
	DescriptionMinLen = 8
	DescriptionMaxLen = 150
)

var (
	validate = validator.New()

	titleRule       = fmt.Sprintf("min=%d,max=%d", TitleMinLen, TitleMaxLen)
	descriptionRule = fmt.Sprintf("min=%d,max=%d", DescriptionMinLen, DescriptionMaxLen)
)

// ValidateInput checks title first and description second.
// Only the first failing check is reported.
func ValidateInput(in TaskInput) error {
	if err := validate.Var(in.Title, titleRule); err != nil {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("Title must be between %d and %d characters!", TitleMinLen, TitleMaxLen),
		}
	}
	if err := validate.Var(in.Description, descriptionRule); err != nil {
		return &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("Description must be between %d and %d characters!", DescriptionMinLen, DescriptionMaxLen),
		}
	}
	if !in.Step.Valid() {
		return &ValidationError{
			Field:   "step",
			Message: fmt.Sprintf("Step must be one of: %s, %s, %s.", StepTodo, StepInProgress, StepDone),
		}
	}
	return nil
}
