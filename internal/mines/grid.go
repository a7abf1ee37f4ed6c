package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Cell struct {
	Mine     bool
	Adjacent int8
	Revealed bool
	Exposed  bool // shown as a mine by the cheat, not revealed
}

// Glyph is what the player sees on a cell.
type Glyph string

const (
	Blank     Glyph = ""
	MineGlyph Glyph = "M"
	// "0".."8" for an opened cell with that many mined neighbours
)

func CountGlyph(n int8) Glyph {
	return Glyph(strconv.Itoa(int(n)))
}

func (c Cell) Glyph() Glyph {
	switch {
	case c.Mine && (c.Revealed || c.Exposed):
		return MineGlyph
	case c.Revealed:
		return CountGlyph(c.Adjacent)
	default:
		return Blank
	}
}

type CellView struct {
	Revealed bool  `json:"revealed"`
	Glyph    Glyph `json:"glyph"`
}

func (c Cell) View() CellView {
	return CellView{Revealed: c.Revealed, Glyph: c.Glyph()}
}

type Grid []CellView

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			ch := string(g[i].Glyph)
			if ch == "" {
				ch = "-"
			} else if ch == "0" {
				ch = "."
			}
			fmt.Fprint(&b, ch+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
