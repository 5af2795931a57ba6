package mockapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// taskRequest is the create and full-update body
type taskRequest struct {
	Title       string      `json:"title" binding:"required,min=4,max=30"`
	Description string      `json:"description" binding:"required,min=8,max=150"`
	Step        domain.Step `json:"step" binding:"required"`
}

type stepRequest struct {
	Step domain.Step `json:"step" binding:"required"`
}

// failure is a one-shot scripted response
type failure struct {
	status  int
	message string
}

// Handlers serves the task routes
type Handlers struct {
	store  *Store
	logger *zap.Logger

	mu       sync.Mutex
	failures map[string][]failure // keyed by HTTP method
	requests []RecordedRequest
}

// RecordedRequest is what the server saw for one call
type RecordedRequest struct {
	Method    string
	Path      string
	RequestID string
	Body      string
}

// NewHandlers creates task handlers over store
func NewHandlers(store *Store, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{
		store:    store,
		logger:   log.With(zap.String("component", "mockapi")),
		failures: make(map[string][]failure),
	}
}

// NewRouter builds the gin engine serving {prefix}/:user/tasks
func NewRouter(h *Handlers, prefix string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.recordMiddleware())
	router.Use(h.failureMiddleware())

	RegisterRoutes(router, h, prefix)
	return router
}

// RegisterRoutes mounts the task routes on router
func RegisterRoutes(router *gin.Engine, h *Handlers, prefix string) {
	api := router.Group(strings.TrimRight(prefix, "/") + "/:user/tasks")
	api.GET("", h.httpListTasks)
	api.POST("", h.httpCreateTask)
	api.PUT("/:id", h.httpUpdateTask)
	api.PATCH("/:id/update-step", h.httpUpdateStep)
	api.DELETE("/:id", h.httpDeleteTask)
}

// FailNext makes the next request with the given method answer with status
// and message instead of reaching the store
func (h *Handlers) FailNext(method string, status int, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures[method] = append(h.failures[method], failure{status: status, message: message})
}

// Requests returns every request seen so far
func (h *Handlers) Requests() []RecordedRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]RecordedRequest, len(h.requests))
	copy(out, h.requests)
	return out
}

// CountRequests returns how many requests used method
func (h *Handlers) CountRequests(method string) int {
	n := 0
	for _, r := range h.Requests() {
		if r.Method == method {
			n++
		}
	}
	return n
}

func (h *Handlers) recordMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var body string
		if c.Request.Body != nil {
			data, err := c.GetRawData()
			if err == nil {
				body = string(data)
				c.Request.Body = newBody(data)
			}
		}

		h.mu.Lock()
		h.requests = append(h.requests, RecordedRequest{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			RequestID: c.GetHeader(requestIDHeader),
			Body:      body,
		})
		h.mu.Unlock()

		c.Next()

		h.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetHeader(requestIDHeader)),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (h *Handlers) failureMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.mu.Lock()
		queue := h.failures[c.Request.Method]
		var f *failure
		if len(queue) > 0 {
			f = &queue[0]
			h.failures[c.Request.Method] = queue[1:]
		}
		h.mu.Unlock()

		if f == nil {
			c.Next()
			return
		}
		if f.message == "" {
			c.AbortWithStatus(f.status)
			return
		}
		c.AbortWithStatusJSON(f.status, gin.H{"message": f.message})
	}
}

func (h *Handlers) httpListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List(c.Param("user")))
}

func (h *Handlers) httpCreateTask(c *gin.Context) {
	in, ok := bindTask(c)
	if !ok {
		return
	}
	task := h.store.Create(c.Param("user"), in)
	h.logger.Info("task created", zap.Int("task_id", task.ID))
	c.JSON(http.StatusCreated, task)
}

func (h *Handlers) httpUpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindTask(c)
	if !ok {
		return
	}
	task, err := h.store.Update(c.Param("user"), id, in)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handlers) httpUpdateStep(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Step.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid step"})
		return
	}
	task, err := h.store.SetStep(c.Param("user"), id, req.Step)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handlers) httpDeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.Delete(c.Param("user"), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindTask decodes and validates a task body. Binding failures are
// answered with the same wording the board uses for its own checks.
func bindTask(c *gin.Context) (domain.TaskInput, bool) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		in := domain.TaskInput{Title: req.Title, Description: req.Description, Step: req.Step}
		message := "Invalid task payload"
		var vErr *domain.ValidationError
		if errors.As(domain.ValidateInput(in), &vErr) {
			message = vErr.Message
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
		return domain.TaskInput{}, false
	}

	in := domain.TaskInput{Title: req.Title, Description: req.Description, Step: req.Step}
	if err := domain.ValidateInput(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return domain.TaskInput{}, false
	}
	return in, true
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return 0, false
	}
	return id, true
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
