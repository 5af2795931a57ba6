// Package mockapi is an in-memory implementation of the task API, served
// with gin. It backs `pacaro mock-api` and the HTTP tests.
package mockapi

import (
	"sort"
	"sync"

	"github.com/riordanpawley/pacaro/internal/domain"
)

// Store keeps tasks per user in memory. Ids are shared across users and
// assigned incrementally.
type Store struct {
	mu     sync.RWMutex
	nextID int
	tasks  map[string]map[int]domain.Task
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		nextID: 1,
		tasks:  make(map[string]map[int]domain.Task),
	}
}

// List returns the user's tasks ordered by id
func (s *Store) List(user string) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, 0, len(s.tasks[user]))
	for _, t := range s.tasks[user] {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create stores a new task for user
func (s *Store) Create(user string, in domain.TaskInput) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Task{
		ID:          s.nextID,
		Title:       in.Title,
		Description: in.Description,
		Step:        in.Step,
		User:        user,
	}
	s.nextID++

	if s.tasks[user] == nil {
		s.tasks[user] = make(map[int]domain.Task)
	}
	s.tasks[user][t.ID] = t
	return t
}

// Update replaces the editable fields of a task
func (s *Store) Update(user string, id int, in domain.TaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[user][id]
	if !ok {
		return domain.Task{}, domain.ErrNotFound
	}
	t.Title = in.Title
	t.Description = in.Description
	t.Step = in.Step
	s.tasks[user][id] = t
	return t, nil
}

// SetStep changes only the stage of a task
func (s *Store) SetStep(user string, id int, step domain.Step) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[user][id]
	if !ok {
		return domain.Task{}, domain.ErrNotFound
	}
	t.Step = step
	s.tasks[user][id] = t
	return t, nil
}

// Delete removes a task
func (s *Store) Delete(user string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[user][id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.tasks[user], id)
	return nil
}
