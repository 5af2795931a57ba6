package mockapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultPrefix matches the path of the hosted API
const DefaultPrefix = "/api"

// Server bundles a store, its handlers and the gin router
type Server struct {
	Store    *Store
	Handlers *Handlers
	router   *gin.Engine
	logger   *zap.Logger
}

// New creates a mock API server with an empty store
func New(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	store := NewStore()
	h := NewHandlers(store, log)
	return &Server{
		Store:    store,
		Handlers: h,
		router:   NewRouter(h, DefaultPrefix),
		logger:   log,
	}
}

// Handler returns the http.Handler serving the API
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock API listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func newBody(data []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(data))
}
