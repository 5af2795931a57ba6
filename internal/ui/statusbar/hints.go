package statusbar

import "github.com/riordanpawley/pacaro/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: columns  j/k: tasks  c: new  e: edit  d: delete  m: move  ?: help  q: quit"
	case types.ModeMove:
		return "h/l: target column  Enter: drop  Esc: cancel"
	case types.ModeEdit:
		return "Tab: next field  Ctrl+S: save  Esc: close"
	case types.ModeConfirm:
		return "y: yes  n: no  Enter: confirm"
	default:
		return ""
	}
}
