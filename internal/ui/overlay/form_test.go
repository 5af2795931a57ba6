package overlay

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/types"
	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

type saveCall struct {
	method string
	id     int
	input  domain.TaskInput
}

type fakeSaver struct {
	calls []saveCall
	err   error
}

func (s *fakeSaver) Create(_ context.Context, in domain.TaskInput) error {
	s.calls = append(s.calls, saveCall{method: "create", input: in})
	return s.err
}

func (s *fakeSaver) UpdateFull(_ context.Context, id int, in domain.TaskInput) error {
	s.calls = append(s.calls, saveCall{method: "update", id: id, input: in})
	return s.err
}

type changedMsg struct{}

type changeCounter struct {
	calls int
}

func (c *changeCounter) changed() tea.Cmd {
	c.calls++
	return func() tea.Msg { return changedMsg{} }
}

// collect runs cmd and flattens any batch into the messages it produces
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func typeText(f *TaskForm, text string) {
	for _, r := range text {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// fillCreateForm types a valid title and description
func fillCreateForm(f *TaskForm) {
	typeText(f, "Write docs")
	f.Update(key(tea.KeyTab))
	typeText(f, "Document the API")
}

func TestNewCreateForm(t *testing.T) {
	f := NewCreateForm(&fakeSaver{}, nil)

	assert.Equal(t, FormCreate, f.Mode())
	assert.Equal(t, "New Task", f.Title())
	assert.Equal(t, domain.TaskInput{Step: domain.StepTodo}, f.Input())
	assert.Equal(t, focusTitle, f.focusIndex)
	assert.NotNil(t, f.Init())

	view := ansi.Strip(f.View())
	assert.Contains(t, view, "Title:")
	assert.Contains(t, view, "Description:")
	assert.Contains(t, view, "Stage:")
	assert.Contains(t, view, "Create Task")
	assert.Contains(t, view, "0/30")
	assert.Contains(t, view, "0/150")
}

func TestNewEditForm(t *testing.T) {
	task := domain.Task{ID: 3, Title: "Fix login", Description: "Session cookie expires", Step: domain.StepInProgress}
	f := NewEditForm(task, &fakeSaver{}, nil)

	assert.Equal(t, FormEdit, f.Mode())
	assert.Equal(t, 3, f.TaskID())
	assert.Equal(t, "Edit Task", f.Title())
	assert.Equal(t, task.Input(), f.Input())
	assert.Contains(t, ansi.Strip(f.View()), "Save Changes")
}

func TestSetTask_Resyncs(t *testing.T) {
	f := NewEditForm(domain.Task{ID: 1, Title: "First", Description: "First description", Step: domain.StepDone}, &fakeSaver{}, nil)
	typeText(f, " edited")

	next := domain.Task{ID: 2, Title: "Second", Description: "Second description", Step: domain.StepTodo}
	f.SetTask(next)

	assert.Equal(t, 2, f.TaskID())
	assert.Equal(t, next.Input(), f.Input())
}

func TestTaskForm_Typing(t *testing.T) {
	f := NewCreateForm(&fakeSaver{}, nil)
	fillCreateForm(f)

	assert.Equal(t, "Write docs", f.Input().Title)
	assert.Equal(t, "Document the API", f.Input().Description)
	assert.Contains(t, ansi.Strip(f.View()), "10/30")
}

func TestTaskForm_TitleCharLimit(t *testing.T) {
	f := NewCreateForm(&fakeSaver{}, nil)
	typeText(f, "abcdefghijklmnopqrstuvwxyz0123456789")

	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz0123", f.Input().Title)
}

func TestTaskForm_FocusCycle(t *testing.T) {
	f := NewCreateForm(&fakeSaver{}, nil)

	order := []int{focusDescription, focusStep, focusSubmit, focusTitle}
	for _, want := range order {
		f.Update(key(tea.KeyTab))
		assert.Equal(t, want, f.focusIndex)
	}

	f.Update(key(tea.KeyShiftTab))
	assert.Equal(t, focusSubmit, f.focusIndex)
}

func TestTaskForm_StepSelection(t *testing.T) {
	f := NewCreateForm(&fakeSaver{}, nil)
	f.setFocus(focusStep)

	tests := []struct {
		key  tea.KeyMsg
		want domain.Step
	}{
		{key(tea.KeyRight), domain.StepInProgress},
		{runeKey('l'), domain.StepDone},
		{key(tea.KeyRight), domain.StepDone},
		{runeKey('h'), domain.StepInProgress},
		{runeKey('1'), domain.StepTodo},
		{key(tea.KeyLeft), domain.StepTodo},
		{runeKey('3'), domain.StepDone},
	}

	for _, tt := range tests {
		f.Update(tt.key)
		assert.Equal(t, tt.want, f.Input().Step, "after %s", tt.key)
	}
}

func TestTaskForm_ValidationBlocksSave(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"short title", "abc", "long enough text", "Title must be between 4 and 30 characters!"},
		{"short description", "Valid title", "short", "Description must be between 8 and 150 characters!"},
		{"both invalid reports title", "ab", "x", "Title must be between 4 and 30 characters!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := &fakeSaver{}
			f := NewCreateForm(saver, nil)
			typeText(f, tt.title)
			f.Update(key(tea.KeyTab))
			typeText(f, tt.description)

			_, cmd := f.Update(key(tea.KeyCtrlS))
			msgs := collect(cmd)

			require.Len(t, msgs, 1)
			assert.Equal(t, toast.ShowMsg{Level: types.ToastError, Message: tt.want}, msgs[0])
			assert.Empty(t, saver.calls, "no request for invalid input")
			assert.False(t, f.Submitting())
			assert.Contains(t, ansi.Strip(f.View()), tt.want)
		})
	}
}

func TestTaskForm_CreateSuccess(t *testing.T) {
	saver := &fakeSaver{}
	counter := &changeCounter{}
	f := NewCreateForm(saver, counter.changed)
	fillCreateForm(f)
	f.setFocus(focusStep)
	f.Update(runeKey('2'))

	_, cmd := f.Update(key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	assert.True(t, f.Submitting())
	assert.Contains(t, ansi.Strip(f.View()), "Saving...")

	_, again := f.Update(key(tea.KeyCtrlS))
	assert.Nil(t, again, "submits are ignored while saving")

	result := cmd()
	require.IsType(t, SaveResultMsg{}, result)
	require.Len(t, saver.calls, 1)
	assert.Equal(t, saveCall{
		method: "create",
		input:  domain.TaskInput{Title: "Write docs", Description: "Document the API", Step: domain.StepInProgress},
	}, saver.calls[0])

	_, cmd = f.Update(result)
	msgs := collect(cmd)

	assert.Contains(t, msgs, tea.Msg(toast.ShowMsg{Level: types.ToastSuccess, Message: "Task created successfully!"}))
	assert.Contains(t, msgs, tea.Msg(changedMsg{}))
	assert.NotContains(t, msgs, tea.Msg(CloseOverlayMsg{}), "create keeps the form open")
	assert.Equal(t, 1, counter.calls)

	assert.False(t, f.Submitting())
	assert.Equal(t, domain.TaskInput{Step: domain.StepTodo}, f.Input(), "fields are cleared")
	assert.Equal(t, focusTitle, f.focusIndex)
}

func TestTaskForm_EditSuccessCloses(t *testing.T) {
	saver := &fakeSaver{}
	counter := &changeCounter{}
	task := domain.Task{ID: 8, Title: "Fix login", Description: "Session cookie expires", Step: domain.StepTodo}
	f := NewEditForm(task, saver, counter.changed)

	f.setFocus(focusStep)
	f.Update(runeKey('3'))
	_, cmd := f.Update(key(tea.KeyCtrlS))
	_, cmd = f.Update(cmd())
	msgs := collect(cmd)

	require.Len(t, saver.calls, 1)
	assert.Equal(t, saveCall{
		method: "update",
		id:     8,
		input:  domain.TaskInput{Title: "Fix login", Description: "Session cookie expires", Step: domain.StepDone},
	}, saver.calls[0], "a step-only edit still sends every field")

	assert.Contains(t, msgs, tea.Msg(toast.ShowMsg{Level: types.ToastSuccess, Message: "Task updated successfully!"}))
	assert.Contains(t, msgs, tea.Msg(CloseOverlayMsg{}))
	assert.Equal(t, 1, counter.calls)
}

func TestTaskForm_SaveFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rejected with message",
			err:  &domain.RequestRejectedError{Op: "create", StatusCode: 400, Message: "Duplicate title"},
			want: "Failed to create task: Duplicate title",
		},
		{
			name: "rejected without message",
			err:  &domain.RequestRejectedError{Op: "create", StatusCode: 500},
			want: "Failed to create task: Unknown error.",
		},
		{
			name: "transport",
			err:  &domain.TransportError{Op: "create", Err: errors.New("connection refused")},
			want: "Connection error while sending the task.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := &changeCounter{}
			f := NewCreateForm(&fakeSaver{err: tt.err}, counter.changed)
			fillCreateForm(f)

			_, cmd := f.Update(key(tea.KeyCtrlS))
			_, cmd = f.Update(cmd())
			msgs := collect(cmd)

			require.Len(t, msgs, 1)
			assert.Equal(t, toast.ShowMsg{Level: types.ToastError, Message: tt.want}, msgs[0])
			assert.Zero(t, counter.calls)
			assert.False(t, f.Submitting())
			assert.Equal(t, "Write docs", f.Input().Title, "fields are kept for another try")
		})
	}
}

func TestTaskForm_EscClosesUnlessSaving(t *testing.T) {
	f := NewCreateForm(&fakeSaver{}, nil)

	_, cmd := f.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, CloseOverlayMsg{}, cmd())

	fillCreateForm(f)
	f.Update(key(tea.KeyCtrlS))
	_, cmd = f.Update(key(tea.KeyEsc))
	assert.Nil(t, cmd)
}

func TestTaskForm_IgnoresOtherFormsResults(t *testing.T) {
	counter := &changeCounter{}
	f := NewCreateForm(&fakeSaver{}, counter.changed)
	other := NewCreateForm(&fakeSaver{}, nil)

	_, cmd := f.Update(SaveResultMsg{form: other})

	assert.Nil(t, cmd)
	assert.Zero(t, counter.calls)
}

func TestTaskForm_EnterOnSubmit(t *testing.T) {
	saver := &fakeSaver{}
	f := NewCreateForm(saver, nil)
	fillCreateForm(f)
	f.setFocus(focusSubmit)

	_, cmd := f.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	cmd()

	assert.Len(t, saver.calls, 1)
}
