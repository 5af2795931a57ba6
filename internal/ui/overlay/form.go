package overlay

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

// FormMode selects between creating a task and editing an existing one
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// Saver persists the values of a submitted form
type Saver interface {
	Create(ctx context.Context, in domain.TaskInput) error
	UpdateFull(ctx context.Context, id int, in domain.TaskInput) error
}

// SaveResultMsg carries the outcome of a submission back to the form that made it
type SaveResultMsg struct {
	form *TaskForm
	Err  error
}

// TaskForm creates or edits a task. A successful save calls the changed
// callback exactly once.
type TaskForm struct {
	mode        FormMode
	taskID      int
	title       textinput.Model
	description textarea.Model
	step        domain.Step
	focusIndex  int
	submitting  bool
	fieldErr    string
	saver       Saver
	changed     func() tea.Cmd
	styles      *Styles
}

const (
	focusTitle = iota
	focusDescription
	focusStep
	focusSubmit
	focusCount
)

const formWidth = 60

// NewCreateForm opens an empty form that starts in the default stage
func NewCreateForm(saver Saver, changed func() tea.Cmd) *TaskForm {
	f := newTaskForm(saver, changed)
	f.mode = FormCreate
	f.step = domain.DefaultStep
	return f
}

// NewEditForm opens a form filled from task
func NewEditForm(task domain.Task, saver Saver, changed func() tea.Cmd) *TaskForm {
	f := newTaskForm(saver, changed)
	f.SetTask(task)
	return f
}

func newTaskForm(saver Saver, changed func() tea.Cmd) *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = domain.TitleMaxLen
	ti.Width = formWidth
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Task description..."
	ta.CharLimit = domain.DescriptionMaxLen
	ta.ShowLineNumbers = false
	ta.SetWidth(formWidth)
	ta.SetHeight(4)

	return &TaskForm{
		title:       ti,
		description: ta,
		focusIndex:  focusTitle,
		saver:       saver,
		changed:     changed,
		styles:      New(),
	}
}

// SetTask switches the form to editing task and re-synchronises every field
func (f *TaskForm) SetTask(task domain.Task) {
	f.mode = FormEdit
	f.taskID = task.ID
	f.title.SetValue(task.Title)
	f.description.SetValue(task.Description)
	f.step = task.Step
	if !f.step.Valid() {
		f.step = domain.DefaultStep
	}
	f.fieldErr = ""
	f.setFocus(focusTitle)
}

// Mode reports whether the form creates or edits
func (f *TaskForm) Mode() FormMode {
	return f.mode
}

// TaskID is the task being edited, 0 in create mode
func (f *TaskForm) TaskID() int {
	return f.taskID
}

// Submitting is true between a submit and its result
func (f *TaskForm) Submitting() bool {
	return f.submitting
}

// Input returns the current field values
func (f *TaskForm) Input() domain.TaskInput {
	return domain.TaskInput{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Step:        f.step,
	}
}

// Init initializes the overlay
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SaveResultMsg:
		if msg.form != f {
			return f, nil
		}
		return f, f.handleResult(msg.Err)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if f.submitting {
				return f, nil
			}
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "down":
			if msg.String() == "down" && f.focusIndex == focusDescription {
				break
			}
			f.setFocus((f.focusIndex + 1) % focusCount)
			return f, nil

		case "shift+tab", "up":
			if msg.String() == "up" && f.focusIndex == focusDescription {
				break
			}
			f.setFocus((f.focusIndex - 1 + focusCount) % focusCount)
			return f, nil

		case "enter":
			switch f.focusIndex {
			case focusSubmit:
				return f, f.submit()
			case focusTitle, focusStep:
				f.setFocus(f.focusIndex + 1)
				return f, nil
			}
		}

		if f.focusIndex == focusStep {
			f.selectStep(msg.String())
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd
}

func (f *TaskForm) setFocus(index int) {
	f.focusIndex = index
	f.title.Blur()
	f.description.Blur()
	switch index {
	case focusTitle:
		f.title.Focus()
	case focusDescription:
		f.description.Focus()
	}
}

func (f *TaskForm) selectStep(key string) {
	steps := domain.Steps()
	current := f.step.Column()
	switch key {
	case "left", "h":
		if current > 0 {
			f.step = steps[current-1]
		}
	case "right", "l", " ":
		if current < len(steps)-1 {
			f.step = steps[current+1]
		}
	case "1", "2", "3":
		f.step = steps[int(key[0]-'1')]
	}
}

func (f *TaskForm) op() toast.Op {
	if f.mode == FormEdit {
		return toast.OpUpdate
	}
	return toast.OpCreate
}

// submit validates locally and, if the input is valid, starts the save.
// Submits while a save is running are ignored.
func (f *TaskForm) submit() tea.Cmd {
	if f.submitting {
		return nil
	}

	in := f.Input()
	if err := domain.ValidateInput(in); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			f.fieldErr = verr.Message
		}
		return toast.Notice(f.op(), err).Cmd()
	}
	if f.saver == nil {
		return nil
	}

	f.fieldErr = ""
	f.submitting = true

	saver, mode, id := f.saver, f.mode, f.taskID
	return func() tea.Msg {
		var err error
		if mode == FormEdit {
			err = saver.UpdateFull(context.Background(), id, in)
		} else {
			err = saver.Create(context.Background(), in)
		}
		return SaveResultMsg{form: f, Err: err}
	}
}

func (f *TaskForm) handleResult(err error) tea.Cmd {
	f.submitting = false
	notice := toast.Notice(f.op(), err).Cmd()
	if err != nil {
		return notice
	}

	cmds := []tea.Cmd{notice}
	if f.changed != nil {
		cmds = append(cmds, f.changed())
	}
	if f.mode == FormEdit {
		cmds = append(cmds, func() tea.Msg { return CloseOverlayMsg{} })
	} else {
		f.reset()
	}
	return tea.Batch(cmds...)
}

func (f *TaskForm) reset() {
	f.title.Reset()
	f.description.Reset()
	f.step = domain.DefaultStep
	f.fieldErr = ""
	f.setFocus(focusTitle)
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	b.WriteString(f.label("Title", focusTitle))
	b.WriteString(f.counter(f.title.Value(), domain.TitleMaxLen))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")

	b.WriteString(f.label("Description", focusDescription))
	b.WriteString(f.counter(f.description.Value(), domain.DescriptionMaxLen))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")

	b.WriteString(f.label("Stage", focusStep))
	b.WriteString("\n")
	b.WriteString(f.renderStepSelector())
	b.WriteString("\n")

	if f.fieldErr != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.FieldError.Render(f.fieldErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.renderSubmit())
	b.WriteString("\n")

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " " + f.styles.FieldCounter.Render("Switch fields"),
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.styles.FieldCounter.Render("Save"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.FieldCounter.Render("Close"),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (f *TaskForm) label(name string, index int) string {
	if f.focusIndex == index {
		return f.styles.FieldLabelActive.Render(name + ":")
	}
	return f.styles.FieldLabel.Render(name + ":")
}

func (f *TaskForm) counter(value string, limit int) string {
	return " " + f.styles.FieldCounter.Render(fmt.Sprintf("%d/%d", utf8.RuneCountInString(value), limit))
}

func (f *TaskForm) renderStepSelector() string {
	var parts []string
	for i, step := range domain.Steps() {
		style := f.styles.MenuItem
		indicator := "( )"
		if step == f.step {
			indicator = "(•)"
			if f.focusIndex == focusStep {
				style = f.styles.MenuItemActive
			}
		}
		parts = append(parts, style.Render(fmt.Sprintf("%d %s %s", i+1, indicator, step)))
	}
	return strings.Join(parts, "  ")
}

func (f *TaskForm) renderSubmit() string {
	switch {
	case f.submitting:
		return f.styles.ButtonDisabled.Render("Saving...")
	case f.focusIndex == focusSubmit:
		return f.styles.ButtonActive.Render(f.submitLabel())
	default:
		return f.styles.Button.Render(f.submitLabel())
	}
}

func (f *TaskForm) submitLabel() string {
	if f.mode == FormEdit {
		return "Save Changes"
	}
	return "Create Task"
}

// Title returns the overlay title
func (f *TaskForm) Title() string {
	if f.mode == FormEdit {
		return "Edit Task"
	}
	return "New Task"
}

// Size returns the overlay dimensions
func (f *TaskForm) Size() (width, height int) {
	return formWidth + 10, 24
}
