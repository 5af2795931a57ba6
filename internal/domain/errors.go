package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores for an unknown task id
var ErrNotFound = errors.New("not found")

// ValidationError is raised before any request is made when a field
// fails its length check
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequestRejectedError means the API answered with a non-success status
type RequestRejectedError struct {
	Op         string // Operation: "list", "create", "update", "update-step", "delete"
	TaskID     int    // Optional: task the request was about
	StatusCode int
	Message    string // Server-provided message, if any
}

func (e *RequestRejectedError) Error() string {
	var target string
	if e.TaskID != 0 {
		target = fmt.Sprintf(" [%d]", e.TaskID)
	}
	if e.Message != "" {
		return fmt.Sprintf("tasks %s%s: status %d: %s", e.Op, target, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("tasks %s%s: status %d", e.Op, target, e.StatusCode)
}

// TransportError means no response was obtained at all
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tasks %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("tasks %s failed", e.Op)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err came from a failed round trip
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ServerMessage returns the message the API attached to a rejection
func ServerMessage(err error) string {
	var re *RequestRejectedError
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}
