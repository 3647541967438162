// Package spectate streams a running game to websocket viewers.
package spectate

import (
	"github.com/vovakirdan/cubesnake/internal/games/cubesnake"
)

// Tile is one non-empty cell of the board. F and O are the directions the
// snake enters and leaves the cell through; they are empty for objects.
type Tile struct {
	I int    `json:"i"`
	T string `json:"t"`
	F string `json:"f,omitempty"`
	O string `json:"o,omitempty"`
}

// Frame is the JSON message pushed to viewers after every tick.
type Frame struct {
	Tick     uint64  `json:"tick"`
	Size     int     `json:"size"`
	Score    int     `json:"score"`
	GameOver bool    `json:"gameOver"`
	Progress float64 `json:"progress"`
	Head     int     `json:"head"`
	Tiles    []Tile  `json:"tiles"`
}

// NewFrame captures the model's board. Tile indices follow the cube grid's
// dense ordering, (side*size+e2)*size+e1.
func NewFrame(tick uint64, m *cubesnake.Model) Frame {
	f := Frame{
		Tick:     tick,
		Size:     m.Grid().Size(),
		Score:    m.Score(),
		GameOver: m.GameOver(),
		Progress: m.Progress(),
		Head:     m.Head(),
		Tiles:    make([]Tile, 0, m.Length()+2),
	}
	for i := range m.Grid().Len() {
		tile := m.TileAt(i)
		if tile.Type == cubesnake.Empty {
			continue
		}
		t := Tile{I: i, T: tile.Type.String()}
		if tile.Type.IsSnake() {
			t.F = tile.From.String()
			t.O = tile.To.String()
		}
		f.Tiles = append(f.Tiles, t)
	}
	return f
}
