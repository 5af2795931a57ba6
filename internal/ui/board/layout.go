package board

// Row geometry shared by rendering and mouse hit-testing
const (
	// HeaderRows is the column title line plus its bottom margin
	HeaderRows = 2
	// CardRows is border (2) + content (3) + bottom margin (1)
	CardRows = 6
	// cardContentRows is the fixed text height of a card
	cardContentRows = 3
	// columnChrome is the column box border on each side
	columnChrome = 2
)

// Layout is the geometry of one rendered frame
type Layout struct {
	Width       int
	Height      int
	ColumnWidth int
	Offsets     []int // first visible task per column
}

// Hit is the result of mapping a screen cell to the board
type Hit struct {
	Column int
	Task   int  // valid when OnCard
	OnCard bool // pointer is over a card
}

// NewLayout computes the geometry for columns rendered in width x height,
// scrolling the active column so the cursor card is visible
func NewLayout(columns []Column, cursor Cursor, width, height int) Layout {
	l := Layout{
		Width:   width,
		Height:  height,
		Offsets: make([]int, len(columns)),
	}
	if len(columns) == 0 {
		return l
	}
	l.ColumnWidth = width / len(columns)

	visible := l.VisibleCards()
	if cursor.Column >= 0 && cursor.Column < len(columns) {
		l.Offsets[cursor.Column] = scrollOffset(cursor.Task, len(columns[cursor.Column].Tasks), visible)
	}
	return l
}

// InnerHeight is the height inside a column's border
func (l Layout) InnerHeight() int {
	h := l.Height - HeaderRows - columnChrome
	if h < 1 {
		return 1
	}
	return h
}

// VisibleCards is how many cards fit in one column
func (l Layout) VisibleCards() int {
	n := l.InnerHeight() / CardRows
	if n < 1 {
		return 1
	}
	return n
}

// HitTest maps board-relative coordinates to a column and, if any, a card.
// ok is false when the point is outside every column.
func (l Layout) HitTest(columns []Column, x, y int) (Hit, bool) {
	if l.ColumnWidth <= 0 || x < 0 || y < 0 || y >= l.Height {
		return Hit{}, false
	}
	col := x / l.ColumnWidth
	if col >= len(columns) {
		return Hit{}, false
	}

	hit := Hit{Column: col}

	row := y - HeaderRows - 1
	if row < 0 {
		return hit, true
	}
	slot := row / CardRows
	if row%CardRows == CardRows-1 || slot >= l.VisibleCards() {
		return hit, true
	}

	task := l.Offsets[col] + slot
	if task < len(columns[col].Tasks) {
		hit.Task = task
		hit.OnCard = true
	}
	return hit, true
}

func scrollOffset(cursorTask, count, visible int) int {
	if cursorTask >= count {
		cursorTask = count - 1
	}
	if cursorTask < visible {
		return 0
	}
	return cursorTask - visible + 1
}
