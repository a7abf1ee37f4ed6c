package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layout builds a row-major mine grid from rows of '*' (mine) and '.'.
func layout(rows ...string) (GameParams, []bool) {
	p := GameParams{Rows: len(rows), Cols: len(rows[0])}
	grid := make([]bool, 0, p.Size())
	for _, row := range rows {
		for _, ch := range row {
			grid = append(grid, ch == '*')
			if ch == '*' {
				p.MineCount++
			}
		}
	}
	return p, grid
}

func newTestGame(t *testing.T, rows ...string) *GameState {
	t.Helper()
	p, grid := layout(rows...)
	g, err := NewGameFromLayout(p, grid)
	require.NoError(t, err)
	return g
}

func revealedCount(g *GameState) (n int) {
	for _, c := range g.cells {
		if c.Revealed {
			n++
		}
	}
	return
}

func TestRevealFloodFillsWholeBoard(t *testing.T) {
	g := newTestGame(t,
		"*...",
		"....",
		"....",
		"....",
	)

	opened, err := g.Reveal(3, 3)
	require.NoError(t, err)

	assert.Len(t, opened, 15)
	assert.Equal(t, 15, revealedCount(g))
	assert.Equal(t, Won, g.Outcome())

	mine, err := g.Cell(0, 0)
	require.NoError(t, err)
	assert.False(t, mine.Revealed)

	for _, p := range []Point{{0, 1}, {1, 0}, {1, 1}} {
		c, err := g.Cell(p.Row, p.Col)
		require.NoError(t, err)
		assert.Equal(t, int8(1), c.Adjacent)
		assert.Equal(t, Glyph("1"), c.Glyph())
	}
}

func TestRevealStopsAtNumberedCells(t *testing.T) {
	g := newTestGame(t,
		".....",
		".....",
		"*****",
		".....",
	)

	opened, err := g.Reveal(0, 0)
	require.NoError(t, err)
	assert.Len(t, opened, 10)
	assert.Equal(t, InProgress, g.Outcome())

	for col := range 5 {
		c, _ := g.Cell(3, col)
		assert.False(t, c.Revealed, "row below the mines must stay hidden")
	}
}

func TestRevealNumberedCellOpensOnlyItself(t *testing.T) {
	g := newTestGame(t,
		"*...",
		"....",
	)

	opened, err := g.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{{Row: 1, Col: 1}}, opened)
	assert.Equal(t, 1, revealedCount(g))
}

func TestRevealIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 50 {
		once, err := NewGame(Classic, r)
		require.NoError(t, err)
		twice := &GameState{params: once.params, cells: append([]Cell(nil), once.cells...)}

		safe := firstSafe(once)
		_, err = once.Reveal(safe.Row, safe.Col)
		require.NoError(t, err)

		_, err = twice.Reveal(safe.Row, safe.Col)
		require.NoError(t, err)
		again, err := twice.Reveal(safe.Row, safe.Col)
		require.NoError(t, err)

		assert.Empty(t, again)
		assert.Equal(t, once.View(), twice.View())
		assert.Equal(t, once.Outcome(), twice.Outcome())
	}
}

func firstSafe(g *GameState) Point {
	for i, c := range g.cells {
		if !c.Mine && c.Adjacent == 0 {
			return g.params.point(i)
		}
	}
	for i, c := range g.cells {
		if !c.Mine {
			return g.params.point(i)
		}
	}
	panic("no safe cell")
}

func TestRevealNeverOpensMines(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for range 100 {
		g, err := NewGame(Classic, r)
		require.NoError(t, err)

		for i, c := range g.cells {
			if c.Mine || c.Adjacent != 0 {
				continue
			}
			p := g.params.point(i)
			_, err := g.Reveal(p.Row, p.Col)
			require.NoError(t, err)
		}

		for _, c := range g.cells {
			if c.Mine {
				assert.False(t, c.Revealed)
			}
		}
		assert.NotEqual(t, Lost, g.Outcome())
	}
}

func TestWinOnLastSafeCell(t *testing.T) {
	g := newTestGame(t, ".*.")

	_, err := g.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, InProgress, g.Outcome())
	assert.False(t, g.Won())

	_, err = g.Reveal(0, 2)
	require.NoError(t, err)
	assert.Equal(t, Won, g.Outcome())
	assert.True(t, g.Won())
}

func TestRevealMineLoses(t *testing.T) {
	g := newTestGame(t,
		"*...",
		"....",
		"....",
		"....",
	)

	opened, err := g.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []Point{{Row: 0, Col: 0}}, opened)
	assert.Equal(t, Lost, g.Outcome())

	view := g.View()
	assert.Equal(t, CellView{Revealed: true, Glyph: MineGlyph}, view[0])
	for _, v := range view[1:] {
		assert.Equal(t, CellView{}, v)
	}

	opened, err = g.Reveal(3, 3)
	require.NoError(t, err)
	assert.Empty(t, opened)
	assert.Equal(t, 1, revealedCount(g))
	assert.Equal(t, Lost, g.Outcome())
}

func TestRevealAfterWinIsIgnored(t *testing.T) {
	g := newTestGame(t, ".*.")
	_, _ = g.Reveal(0, 0)
	_, _ = g.Reveal(0, 2)
	require.Equal(t, Won, g.Outcome())

	opened, err := g.Reveal(0, 1)
	require.NoError(t, err)
	assert.Empty(t, opened)
	assert.Equal(t, Won, g.Outcome())
}

func TestRevealOutOfBounds(t *testing.T) {
	g := newTestGame(t, "*.", "..")

	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := g.Reveal(p.Row, p.Col)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "%v", p)

		var oob *OutOfBoundsError
		require.ErrorAs(t, err, &oob)
		assert.Equal(t, p.Row, oob.Row)
		assert.Equal(t, p.Col, oob.Col)
	}
	assert.Equal(t, 0, revealedCount(g))
}

func TestRevealAllMines(t *testing.T) {
	g := newTestGame(t,
		"*..*",
		"....",
		".*..",
	)

	points := g.RevealAllMines()
	assert.ElementsMatch(t, []Point{{0, 0}, {0, 3}, {2, 1}}, points)
	assert.Equal(t, InProgress, g.Outcome())
	assert.Equal(t, 0, revealedCount(g))

	for i, v := range g.View() {
		if g.cells[i].Mine {
			assert.Equal(t, MineGlyph, v.Glyph)
			assert.False(t, v.Revealed)
		} else {
			assert.Equal(t, Blank, v.Glyph)
		}
	}
}

func TestNewGameFromLayoutRejectsMismatch(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		grid   []bool
	}{
		{"wrong size", GameParams{Rows: 2, Cols: 2, MineCount: 1}, []bool{true}},
		{"too few mines", GameParams{Rows: 2, Cols: 2, MineCount: 2}, []bool{true, false, false, false}},
		{"too many mines", GameParams{Rows: 2, Cols: 2, MineCount: 1}, []bool{true, false, false, true}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewGameFromLayout(test.params, test.grid)
			var ce *ConfigurationError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestGridToString(t *testing.T) {
	g := newTestGame(t,
		"*..",
		"...",
	)
	_, err := g.Reveal(1, 2)
	require.NoError(t, err)

	assert.Equal(t, "- 1 . \n- 1 . \n", g.String())
}

func TestOutcomeText(t *testing.T) {
	for _, o := range []Outcome{InProgress, Lost, Won} {
		b, err := o.MarshalText()
		require.NoError(t, err)

		var back Outcome
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, o, back)
	}
	assert.True(t, Won.Terminal())
	assert.False(t, InProgress.Terminal())
}
