package entity

import "time"

// Result is the record of a finished game.
type Result struct {
	ID         string     `json:"id"`
	State      BoardState `json:"state"`
	Board      Board      `json:"board"`
	Moves      int        `json:"moves"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}
