// Package network tracks whether the task API is reachable.
package network

import (
	"context"
	"net/http"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/pacaro/internal/domain"
)

// DefaultProbeTimeout bounds a single reachability probe
const DefaultProbeTimeout = 5 * time.Second

// StatusChecker keeps the last known reachability of the task API.
// It learns from request outcomes and from explicit probes.
type StatusChecker struct {
	mu       sync.RWMutex
	isOnline bool
	url      string
	client   *http.Client
}

// StatusMsg is sent when a probe completes
type StatusMsg struct {
	Online bool
}

// NewStatusChecker creates a checker probing url
func NewStatusChecker(url string) *StatusChecker {
	return &StatusChecker{
		isOnline: true, // Optimistically assume online
		url:      url,
		client: &http.Client{
			Timeout: DefaultProbeTimeout,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
	}
}

// Check sends a HEAD request to the API. Any response, whatever its status,
// means the server is reachable.
func (s *StatusChecker) Check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.url, nil)
	if err != nil {
		s.setOnline(false)
		return false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.setOnline(false)
		return false
	}
	resp.Body.Close()

	s.setOnline(true)
	return true
}

// Observe records the outcome of an API call and reports whether the
// status changed. Only transport failures count as offline.
func (s *StatusChecker) Observe(err error) bool {
	online := !domain.IsTransport(err)

	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.isOnline != online
	s.isOnline = online
	return changed
}

// IsOnline returns the cached online status
func (s *StatusChecker) IsOnline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOnline
}

func (s *StatusChecker) setOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOnline = online
}

// RetryCmd probes again after delay
func (s *StatusChecker) RetryCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultProbeTimeout)
		defer cancel()

		return StatusMsg{Online: s.Check(ctx)}
	})
}
