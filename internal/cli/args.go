package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

// parseID parses a positional task id
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q: must be a positive number", arg)
	}
	return id, nil
}

// stepAliases are the shell-friendly spellings accepted besides the stage names
var stepAliases = map[string]domain.Step{
	"todo":       domain.StepTodo,
	"1":          domain.StepTodo,
	"inprogress": domain.StepInProgress,
	"doing":      domain.StepInProgress,
	"wip":        domain.StepInProgress,
	"2":          domain.StepInProgress,
	"done":       domain.StepDone,
	"3":          domain.StepDone,
}

// parseStepArg accepts a stage name ("In progress") or an alias ("in-progress", "2")
func parseStepArg(arg string) (domain.Step, error) {
	if step, err := domain.ParseStep(arg); err == nil {
		return step, nil
	}
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(arg))
	if step, ok := stepAliases[key]; ok {
		return step, nil
	}
	return "", fmt.Errorf("invalid stage %q: use todo, in-progress or done", arg)
}

// findTask looks a task up in the user's list. The API has no single-task read.
func findTask(ctx context.Context, deps *Dependencies, id int) (domain.Task, error) {
	tasks, err := deps.Client.List(ctx)
	if err != nil {
		return domain.Task{}, requestFailed(toast.OpLoad, err)
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, fmt.Errorf("task #%d not found", id)
}
