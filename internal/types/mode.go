// Package types contains shared types used across the application.
package types

// Mode represents what the board keys currently act on
type Mode int

const (
	ModeNormal  Mode = iota
	ModeMove         // a card is picked up
	ModeEdit         // the task form is open
	ModeConfirm      // a confirmation dialog is open
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeMove:
		return "MOVE"
	case ModeEdit:
		return "EDIT"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}
