package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_Contains(t *testing.T) {
	layout := NewLayout(10, 10)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "origin", x: 10, y: 10, want: true},
		{name: "last column and row", x: 24, y: 18, want: true},
		{name: "left of the board", x: 9, y: 12, want: false},
		{name: "above the board", x: 12, y: 9, want: false},
		{name: "right edge is exclusive", x: 25, y: 12, want: false},
		{name: "bottom edge is exclusive", x: 12, y: 19, want: false},
		{name: "top-left corner of the screen", x: 0, y: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.Contains(tt.x, tt.y))
		})
	}
}

func TestLayout_CellAt(t *testing.T) {
	layout := NewLayout(10, 10)

	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{name: "top-left cell", x: 10, y: 10, row: 0, col: 0, ok: true},
		{name: "inside top-left cell", x: 14, y: 12, row: 0, col: 0, ok: true},
		{name: "x selects the column", x: 15, y: 10, row: 0, col: 1, ok: true},
		{name: "y selects the row", x: 10, y: 13, row: 1, col: 0, ok: true},
		{name: "bottom-right cell", x: 24, y: 18, row: 2, col: 2, ok: true},
		{name: "outside", x: 30, y: 30, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := layout.CellAt(tt.x, tt.y)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestLayout_Positions(t *testing.T) {
	layout := NewLayout(10, 10)

	x, y := layout.CellOrigin(2, 1)
	assert.Equal(t, 15, x)
	assert.Equal(t, 16, y)

	x, y = layout.StatusLine()
	assert.Equal(t, 10, x)
	assert.Equal(t, 22, y)
}
