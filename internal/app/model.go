// Package app contains the board controller and its TEA implementation.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/config"
	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/services/collection"
	"github.com/riordanpawley/pacaro/internal/services/dragdrop"
	"github.com/riordanpawley/pacaro/internal/services/navigation"
	"github.com/riordanpawley/pacaro/internal/services/network"
	"github.com/riordanpawley/pacaro/internal/types"
	"github.com/riordanpawley/pacaro/internal/ui/board"
	"github.com/riordanpawley/pacaro/internal/ui/overlay"
	"github.com/riordanpawley/pacaro/internal/ui/styles"
	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal  = types.ModeNormal
	ModeMove    = types.ModeMove
	ModeEdit    = types.ModeEdit
	ModeConfirm = types.ModeConfirm
)

// Re-export Toast type for convenience
type Toast = types.Toast

// offlineRetryInterval is how often the API is probed while unreachable
const offlineRetryInterval = 5 * time.Second

// TaskService is the remote task repository the board talks to
type TaskService interface {
	overlay.Saver
	List(ctx context.Context) ([]domain.Task, error)
	UpdateStep(ctx context.Context, id int, step domain.Step) error
	Delete(ctx context.Context, id int) error
	UserID() string
	ResourceURL() string
}

// Model is the main application state
type Model struct {
	// Core data
	tasks  *collection.Collection
	client TaskService

	// Navigation and drag state
	nav  *navigation.Service
	drag *dragdrop.Coordinator

	// UI state
	overlayStack *overlay.Stack
	creator      *overlay.TaskForm
	editor       *overlay.TaskForm
	compact      bool

	// Toasts
	toasts   []Toast
	toastTTL time.Duration

	// Terminal size
	width  int
	height int

	styles *styles.Styles

	// Loading state, true until the first list response
	loading bool
	spinner spinner.Model

	networkChecker *network.StatusChecker
	// probing is set while a RetryCmd tick is pending
	probing bool

	logger *zap.Logger
}

// New creates the board controller. All remote calls go through client.
func New(cfg *config.Config, client TaskService, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	ttl := cfg.UI.ToastDuration()
	if ttl <= 0 {
		ttl = 3 * time.Second
	}

	tasks := collection.New()

	return Model{
		tasks:          tasks,
		client:         client,
		nav:            navigation.NewService(),
		drag:           dragdrop.New(tasks),
		overlayStack:   overlay.NewStack(),
		compact:        cfg.UI.Compact,
		toasts:         []Toast{},
		toastTTL:       ttl,
		styles:         styles.New(),
		loading:        true,
		spinner:        s,
		networkChecker: network.NewStatusChecker(client.ResourceURL()),
		logger:         logger.Named("board"),
	}
}

// Init issues the initial reload
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.reloadCmd(),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.overlayStack.IsEmpty() || m.compact {
			return m, nil
		}
		return m.handleMouse(msg)

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.SelectionMsg:
		m.overlayStack.Pop()
		return m.handleSelection(msg)

	case overlay.SaveResultMsg:
		cmd := m.observe(msg.Err)
		return m, tea.Batch(cmd, m.overlayStack.Update(msg))

	case toast.ShowMsg:
		cmd := m.addToast(msg)
		return m, cmd

	case toastExpireMsg:
		m.expireToasts(time.Time(msg))
		return m, nil

	case network.StatusMsg:
		if !msg.Online {
			return m, m.networkChecker.RetryCmd(offlineRetryInterval)
		}
		m.probing = false
		m.logger.Info("task API reachable again")
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		m.tasks.Replace(msg.tasks)
		m.logger.Debug("tasks loaded", zap.Int("count", len(msg.tasks)))
		cmd := m.observe(nil)
		return m, cmd

	case tasksLoadFailedMsg:
		m.loading = false
		m.logger.Warn("failed to load tasks", zap.Error(msg.err))
		cmd := tea.Batch(
			m.observe(msg.err),
			m.addToast(toast.Notice(toast.OpLoad, msg.err)),
		)
		return m, cmd

	case stepUpdatedMsg:
		observeCmd := m.observe(msg.err)
		if msg.err != nil {
			m.logger.Warn("failed to move task", zap.Int("task_id", msg.move.TaskID), zap.Error(msg.err))
			toastCmd := m.addToast(toast.Notice(toast.OpMove, msg.err))
			return m, tea.Batch(observeCmd, toastCmd)
		}
		m.tasks.ApplyStepMove(msg.move.TaskID, msg.move.To)
		m.nav.SelectTask(msg.move.TaskID, msg.move.To.Column())
		toastCmd := m.addToast(toast.Moved(msg.move.To))
		return m, tea.Batch(observeCmd, toastCmd)

	case taskDeletedMsg:
		observeCmd := m.observe(msg.err)
		if msg.err != nil {
			m.logger.Warn("failed to delete task", zap.Int("task_id", msg.id), zap.Error(msg.err))
			toastCmd := m.addToast(toast.Notice(toast.OpDelete, msg.err))
			return m, tea.Batch(observeCmd, toastCmd)
		}
		toastCmd := m.addToast(toast.Notice(toast.OpDelete, nil))
		return m, tea.Batch(observeCmd, toastCmd, m.reloadCmd())
	}

	// Anything else (cursor blink and the like) belongs to the open overlay
	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// handleSelection acts on the answer of a dialog that has just closed
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok || !result.Confirmed || result.TaskID == 0 {
		return m, nil
	}
	return m, m.deleteCmd(result.TaskID)
}

// buildColumns groups the collection into the three board columns
func (m Model) buildColumns() []board.Column {
	return board.ColumnsFrom(m.tasks.GroupByStep())
}

// mode derives what keys currently act on from the overlay and drag state
func (m Model) mode() Mode {
	switch m.overlayStack.Current().(type) {
	case *overlay.TaskForm:
		return ModeEdit
	case *overlay.ConfirmDialog:
		return ModeConfirm
	}
	if m.drag.Dragging() {
		return ModeMove
	}
	return ModeNormal
}

// addToast shows a notification and schedules its expiry
func (m *Model) addToast(msg toast.ShowMsg) tea.Cmd {
	m.toasts = append(m.toasts, types.NewToast(msg.Level, msg.Message, time.Now(), m.toastTTL))
	return tea.Tick(m.toastTTL, func(t time.Time) tea.Msg {
		return toastExpireMsg(t)
	})
}

// expireToasts removes toasts that have expired at now
func (m *Model) expireToasts(now time.Time) {
	filtered := make([]Toast, 0, len(m.toasts))
	for _, t := range m.toasts {
		if !t.Expired(now) {
			filtered = append(filtered, t)
		}
	}
	m.toasts = filtered
}

// observe feeds a request outcome to the reachability tracker and starts
// probing when the API has just become unreachable. At most one probe
// chain runs at a time; a pending one keeps going until a probe succeeds.
func (m *Model) observe(err error) tea.Cmd {
	if !m.networkChecker.Observe(err) {
		return nil
	}
	if m.networkChecker.IsOnline() {
		m.logger.Info("task API reachable again")
		return nil
	}
	m.logger.Warn("task API unreachable", zap.Error(err))
	if m.probing {
		return nil
	}
	m.probing = true
	return m.networkChecker.RetryCmd(offlineRetryInterval)
}
