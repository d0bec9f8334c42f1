package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

type Game struct {
	Board         Board  `json:"board"`
	CurrentPlayer Player `json:"current_player"`
}

// NewGame returns a game with an empty board and X to move.
func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: PlayerX,
	}
}

func (that *Game) SwitchPlayer() {
	that.CurrentPlayer = that.CurrentPlayer.Other()
}

func (that *Game) State() BoardState {
	return that.Board.State()
}

func (that *Game) IsFinished() bool {
	return that.State().IsTerminal()
}

// MakeTurn marks the cell with the current player and passes the turn.
// A rejected move leaves the game untouched.
func (that *Game) MakeTurn(row, col int) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Board[row][col] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[row][col] = that.CurrentPlayer
	that.SwitchPlayer()

	return nil
}
