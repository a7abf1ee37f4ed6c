package mines

import "fmt"

// Classic is the only board the game offers: 10x10 with 20 mines.
var Classic = GameParams{Rows: 10, Cols: 10, MineCount: 20}

type GameParams struct {
	Rows, Cols, MineCount int
}

func (p GameParams) Size() int {
	return p.Rows * p.Cols
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.MineCount)
}

// Validate fails with a [*ConfigurationError] when no board can be built:
// there must be at least one safe cell.
func (p GameParams) Validate() error {
	switch {
	case p.Rows <= 0 || p.Cols <= 0:
		return &ConfigurationError{Params: p, Reason: "board dimensions must be positive"}
	case p.MineCount < 0:
		return &ConfigurationError{Params: p, Reason: "mine count must not be negative"}
	case p.MineCount >= p.Size():
		return &ConfigurationError{Params: p, Reason: "mine count must be less than the number of cells"}
	}
	return nil
}

func (p GameParams) InBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

func (p GameParams) index(row, col int) int {
	return row*p.Cols + col
}

func (p GameParams) point(i int) Point {
	return Point{Row: i / p.Cols, Col: i % p.Cols}
}

// neighbours calls fn with the index of every in-bounds cell around i.
func (p GameParams) neighbours(i int, fn func(j int)) {
	row, col := i/p.Cols, i%p.Cols
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if r, c := row+dr, col+dc; p.InBounds(r, c) {
				fn(r*p.Cols + c)
			}
		}
	}
}

type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
