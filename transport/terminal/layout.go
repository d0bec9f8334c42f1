package terminal

import "github.com/rocketscienceinc/tictactoe-terminal/internal/entity"

const (
	CellWidth  = 5
	CellHeight = 3
)

// Layout places the board on the screen. Origin is the top-left corner of cell (0,0).
type Layout struct {
	OriginX int
	OriginY int
}

func NewLayout(originX, originY int) Layout {
	return Layout{OriginX: originX, OriginY: originY}
}

// Contains reports whether the screen position falls on the board.
func (that Layout) Contains(x, y int) bool {
	return x >= that.OriginX && x < that.OriginX+CellWidth*entity.BoardSize &&
		y >= that.OriginY && y < that.OriginY+CellHeight*entity.BoardSize
}

// CellAt maps a screen position to a board cell.
func (that Layout) CellAt(x, y int) (row, col int, ok bool) {
	if !that.Contains(x, y) {
		return 0, 0, false
	}

	return (y - that.OriginY) / CellHeight, (x - that.OriginX) / CellWidth, true
}

// CellOrigin returns the top-left screen position of a cell.
func (that Layout) CellOrigin(row, col int) (x, y int) {
	return that.OriginX + col*CellWidth, that.OriginY + row*CellHeight
}

// StatusLine returns where the status message is written.
func (that Layout) StatusLine() (x, y int) {
	return that.OriginX, that.OriginY + CellHeight*entity.BoardSize + 3
}
