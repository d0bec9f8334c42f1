package entity

import "strings"

const BoardSize = 3

type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"

	EmptyCell Player = ""
)

// Other returns the opponent of that player. EmptyCell has no opponent.
func (that Player) Other() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Player) String() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}

type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusWon        Status = "won"
	StatusTie        Status = "tie"
)

// BoardState is the result of evaluating a Board. Winner is set only for StatusWon.
type BoardState struct {
	Status Status `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

var (
	Incomplete = BoardState{Status: StatusIncomplete}
	Tie        = BoardState{Status: StatusTie}
)

func Won(player Player) BoardState {
	return BoardState{Status: StatusWon, Winner: player}
}

// IsTerminal reports whether the state ends the game.
func (that BoardState) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusTie
}

// Board is a row-major 3x3 grid. An occupied cell is never cleared within a game.
type Board [BoardSize][BoardSize]Player

func NewBoard() Board {
	return Board{}
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that Board) At(row, col int) Player {
	if !InBounds(row, col) {
		return EmptyCell
	}
	return that[row][col]
}

func (that Board) CheckRow(row int) (Player, bool) {
	return line(that[row][0], that[row][1], that[row][2])
}

func (that Board) CheckCol(col int) (Player, bool) {
	return line(that[0][col], that[1][col], that[2][col])
}

func (that Board) CheckDiagonalTopLeft() (Player, bool) {
	return line(that[0][0], that[1][1], that[2][2])
}

func (that Board) CheckDiagonalDownLeft() (Player, bool) {
	return line(that[2][0], that[1][1], that[0][2])
}

// CheckDiagonals checks the down-left diagonal before the top-left one.
func (that Board) CheckDiagonals() (Player, bool) {
	if player, ok := that.CheckDiagonalDownLeft(); ok {
		return player, true
	}
	return that.CheckDiagonalTopLeft()
}

func (that Board) HasEmptyCells() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return true
			}
		}
	}
	return false
}

// Moves returns the number of occupied cells.
func (that Board) Moves() int {
	moves := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				moves++
			}
		}
	}
	return moves
}

// State evaluates row 0, column 0, row 1, column 1, row 2, column 2 and then the
// diagonals. The first completed line found decides the winner.
func (that Board) State() BoardState {
	for i := 0; i < BoardSize; i++ {
		if player, ok := that.CheckRow(i); ok {
			return Won(player)
		}
		if player, ok := that.CheckCol(i); ok {
			return Won(player)
		}
	}

	if player, ok := that.CheckDiagonals(); ok {
		return Won(player)
	}

	if that.HasEmptyCells() {
		return Incomplete
	}

	return Tie
}

func (that Board) String() string {
	var sb strings.Builder
	for i, row := range that {
		if i > 0 {
			sb.WriteString("---+---+---\n")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + cell.String() + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func line(a, b, c Player) (Player, bool) {
	if a != EmptyCell && a == b && b == c {
		return a, true
	}
	return EmptyCell, false
}
