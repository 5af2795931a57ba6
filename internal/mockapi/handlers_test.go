package mockapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/pacaro/internal/domain"
)

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestCreateAndList(t *testing.T) {
	s := New(nil)

	rec := do(t, s, http.MethodPost, "/api/alice/tasks", `{"title":"Buy milk","description":"Two liters, skimmed","step":"To do"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "alice", created.User)

	do(t, s, http.MethodPost, "/api/alice/tasks", `{"title":"Pay rent","description":"Before the fifth","step":"Done"}`)

	rec = do(t, s, http.MethodGet, "/api/alice/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, domain.StepDone, tasks[1].Step)
}

func TestList_ScopedByUser(t *testing.T) {
	s := New(nil)
	s.Store.Create("alice", domain.TaskInput{Title: "Alice task", Description: "belongs to alice", Step: domain.StepTodo})

	rec := do(t, s, http.MethodGet, "/api/bob/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "short title",
			body:    `{"title":"abc","description":"long enough text","step":"To do"}`,
			wantMsg: "Title must be between 4 and 30 characters!",
		},
		{
			name:    "short description",
			body:    `{"title":"Valid title","description":"short","step":"To do"}`,
			wantMsg: "Description must be between 8 and 150 characters!",
		},
		{
			name:    "unknown step",
			body:    `{"title":"Valid title","description":"long enough text","step":"Blocked"}`,
			wantMsg: "Step must be one of: To do, In progress, Done.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			rec := do(t, s, http.MethodPost, "/api/alice/tasks", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
			assert.Empty(t, s.Store.List("alice"))
		})
	}
}

func TestUpdateTask(t *testing.T) {
	s := New(nil)
	task := s.Store.Create("alice", domain.TaskInput{Title: "Old title", Description: "old description", Step: domain.StepTodo})

	rec := do(t, s, http.MethodPut, "/api/alice/tasks/1", `{"title":"New title","description":"new description","step":"In progress"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got := s.Store.List("alice")[0]
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, domain.StepInProgress, got.Step)
}

func TestUpdateStep(t *testing.T) {
	s := New(nil)
	s.Store.Create("alice", domain.TaskInput{Title: "Some task", Description: "some description", Step: domain.StepTodo})

	rec := do(t, s, http.MethodPatch, "/api/alice/tasks/1/update-step", `{"step":"Done"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StepDone, s.Store.List("alice")[0].Step)

	rec = do(t, s, http.MethodPatch, "/api/alice/tasks/1/update-step", `{"step":"Later"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotFound(t *testing.T) {
	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPut, "/api/alice/tasks/42", `{"title":"New title","description":"new description","step":"Done"}`},
		{http.MethodPatch, "/api/alice/tasks/42/update-step", `{"step":"Done"}`},
		{http.MethodDelete, "/api/alice/tasks/42", ""},
		{http.MethodDelete, "/api/alice/tasks/abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			s := New(nil)
			rec := do(t, s, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Task not found", decodeMessage(t, rec))
		})
	}
}

func TestDeleteTask(t *testing.T) {
	s := New(nil)
	s.Store.Create("alice", domain.TaskInput{Title: "Some task", Description: "some description", Step: domain.StepTodo})

	rec := do(t, s, http.MethodDelete, "/api/alice/tasks/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, s.Store.List("alice"))
}

func TestFailNext(t *testing.T) {
	s := New(nil)
	s.Handlers.FailNext(http.MethodGet, http.StatusInternalServerError, "boom")

	rec := do(t, s, http.MethodGet, "/api/alice/tasks", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", decodeMessage(t, rec))

	// One-shot: the next request succeeds
	rec = do(t, s, http.MethodGet, "/api/alice/tasks", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestsAreRecorded(t *testing.T) {
	s := New(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/alice/tasks", strings.NewReader(`{"title":"Buy milk","description":"Two liters, skimmed","step":"To do"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-1")
	s.Handler().ServeHTTP(httptest.NewRecorder(), req)

	reqs := s.Handlers.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "req-1", reqs[0].RequestID)
	assert.Contains(t, reqs[0].Body, "Buy milk")
	assert.Equal(t, 1, s.Handlers.CountRequests(http.MethodPost))
	assert.Len(t, s.Store.List("alice"), 1, "recorded body must still reach the handler")
}
