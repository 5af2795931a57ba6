// Package tasks is the REST client for the per-user task resource.
package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/domain"
)

// RequestIDHeader carries a per-request uuid so client and server logs line up
const RequestIDHeader = "X-Request-ID"

// Config holds the connection settings injected at construction
type Config struct {
	BaseURL string
	UserID  string
	Timeout time.Duration
}

// Client talks to {BaseURL}/{UserID}/tasks
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a tasks client. A nil httpClient uses http.DefaultClient.
func NewClient(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: logger,
	}
}

// UserID returns the user the client is scoped to
func (c *Client) UserID() string {
	return c.cfg.UserID
}

// ResourceURL returns the collection URL for the configured user
func (c *Client) ResourceURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + url.PathEscape(c.cfg.UserID) + "/tasks"
}

// List fetches all tasks of the user
func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, "list", http.MethodGet, "", 0, nil, isSuccess, &tasks); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched tasks", zap.Int("count", len(tasks)))
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Create posts a new task. Only 201 Created counts as success.
func (c *Client) Create(ctx context.Context, in domain.TaskInput) error {
	return c.do(ctx, "create", http.MethodPost, "", 0, in, isCreated, nil)
}

// UpdateFull replaces title, description and step of a task
func (c *Client) UpdateFull(ctx context.Context, id int, in domain.TaskInput) error {
	return c.do(ctx, "update", http.MethodPut, taskPath(id), id, in, isSuccess, nil)
}

// UpdateStep moves a task to another stage
func (c *Client) UpdateStep(ctx context.Context, id int, step domain.Step) error {
	body := struct {
		Step domain.Step `json:"step"`
	}{Step: step}
	return c.do(ctx, "update-step", http.MethodPatch, taskPath(id)+"/update-step", id, body, isSuccess, nil)
}

// Delete removes a task
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, "delete", http.MethodDelete, taskPath(id), id, nil, isSuccess, nil)
}

func taskPath(id int) string {
	return fmt.Sprintf("/%d", id)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func isCreated(status int) bool {
	return status == http.StatusCreated
}

// do performs one request. Failures before a response are TransportErrors;
// responses whose status is not accepted are RequestRejectedErrors.
func (c *Client) do(ctx context.Context, op, method, path string, taskID int, body any, accept func(int) bool, out any) error {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &domain.TransportError{Op: op, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	target := c.ResourceURL() + path
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With(
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", target),
		zap.String("request_id", requestID),
	)
	if taskID != 0 {
		log = log.With(zap.Int("task_id", taskID))
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("reading response failed", zap.Error(err))
		return &domain.TransportError{Op: op, Err: err}
	}

	log.Debug("request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if !accept(resp.StatusCode) {
		rejected := &domain.RequestRejectedError{
			Op:         op,
			TaskID:     taskID,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(data),
		}
		log.Info("request rejected", zap.Error(rejected))
		return rejected
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			log.Warn("decoding response failed", zap.Error(err))
			return &domain.RequestRejectedError{
				Op:         op,
				TaskID:     taskID,
				StatusCode: resp.StatusCode,
				Message:    "invalid response body",
			}
		}
	}

	return nil
}

// serverMessage extracts {"message": "..."} from an error body
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
