package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/riordanpawley/pacaro/internal/domain"
)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: 1, Title: "Write docs", Description: "Document the API", Step: domain.StepTodo, User: "ana"},
		{ID: 2, Title: "Fix login", Description: "Session cookie\nexpires early", Step: domain.StepInProgress, User: "ana"},
		{ID: 3, Title: "Release", Description: "Tag v1.0 and publish", Step: domain.StepTodo, User: "ana"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupTasks(t *testing.T) {
	tasks := append(sampleTasks(), domain.Task{ID: 9, Title: "Odd", Step: "Archived"})
	groups := GroupTasks(tasks)

	require.Len(t, groups, 3)
	assert.Equal(t, domain.StepTodo, groups[0].Step)
	assert.Equal(t, []int{1, 3}, ids(groups[0].Tasks), "server order is kept")
	assert.Equal(t, []int{2}, ids(groups[1].Tasks))
	assert.NotNil(t, groups[2].Tasks)
	assert.Empty(t, groups[2].Tasks)
}

func TestTasks_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, FormatTable, sampleTasks()))

	out := buf.String()
	assert.Contains(t, out, "To do (2)")
	assert.Contains(t, out, "In progress (1)")
	assert.Contains(t, out, "Done (0)\n  (no tasks)")
	assert.Contains(t, out, "Session cookie expires early", "newlines are flattened")

	todo := strings.Index(out, "To do")
	progress := strings.Index(out, "In progress")
	done := strings.Index(out, "Done")
	assert.True(t, todo < progress && progress < done, "stages print in board order")
}

func TestTasks_TableTruncatesDescription(t *testing.T) {
	long := strings.Repeat("a", 100)
	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, FormatTable, []domain.Task{{ID: 1, Title: "Long", Description: long, Step: domain.StepDone}}))

	assert.Contains(t, buf.String(), strings.Repeat("a", descriptionWidth-3)+"...")
	assert.NotContains(t, buf.String(), long)
}

func TestTasks_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, FormatJSON, sampleTasks()))

	var got []Group
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, GroupTasks(sampleTasks()), got)
	assert.Contains(t, buf.String(), `"step": "In progress"`)
}

func TestTasks_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, FormatYAML, sampleTasks()))

	var got []Group
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, GroupTasks(sampleTasks()), got)
	assert.Contains(t, buf.String(), "step: To do")
}

func TestTasks_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Tasks(&buf, Format("csv"), sampleTasks()))
}

func TestTask(t *testing.T) {
	var buf bytes.Buffer
	Task(&buf, domain.Task{ID: 4, Title: "", Description: "line one\nline two", Step: domain.StepDone})

	assert.Equal(t, "#4  (untitled)\n    stage:       Done\n    description: line one line two\n", buf.String())
}

func ids(tasks []domain.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
