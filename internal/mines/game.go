package mines

import (
	"fmt"
	"math/rand/v2"
)

type GameState struct {
	params  GameParams
	cells   []Cell // row-major
	outcome Outcome
}

func NewGame(params GameParams, r *rand.Rand) (*GameState, error) {
	grid, err := GenerateMines(params, r)
	if err != nil {
		return nil, err
	}
	return NewGameFromLayout(params, grid)
}

// NewGameFromLayout builds a game over a known mine layout, given in
// row-major order.
func NewGameFromLayout(params GameParams, grid []bool) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(grid) != params.Size() {
		return nil, &ConfigurationError{Params: params, Reason: "mine layout does not match the grid size"}
	}
	mc := 0
	for _, mine := range grid {
		if mine {
			mc++
		}
	}
	if mc != params.MineCount {
		return nil, &ConfigurationError{
			Params: params,
			Reason: fmt.Sprintf("mine layout has %d mines", mc),
		}
	}

	counts := CountAdjacent(params, grid)
	cells := make([]Cell, len(grid))
	for i := range cells {
		cells[i] = Cell{Mine: grid[i], Adjacent: counts[i]}
	}

	return &GameState{params: params, cells: cells}, nil
}

func (s *GameState) Params() GameParams {
	return s.params
}

func (s *GameState) Outcome() Outcome {
	return s.outcome
}

func (s *GameState) Cell(row, col int) (Cell, error) {
	if !s.params.InBounds(row, col) {
		return Cell{}, s.outOfBounds(row, col)
	}
	return s.cells[s.params.index(row, col)], nil
}

func (s *GameState) outOfBounds(row, col int) error {
	return &OutOfBoundsError{Row: row, Col: col, Rows: s.params.Rows, Cols: s.params.Cols}
}

// Reveal opens the cell at (row, col) and returns every cell it revealed.
// After a win or a loss it does nothing.
func (s *GameState) Reveal(row, col int) ([]Point, error) {
	if !s.params.InBounds(row, col) {
		return nil, s.outOfBounds(row, col)
	}
	if s.outcome.Terminal() {
		return nil, nil
	}

	i := s.params.index(row, col)
	if s.cells[i].Revealed {
		return nil, nil
	}

	if s.cells[i].Mine {
		/*
		 * The player has landed on a mine. Expose only the mine that
		 * killed them.
		 */
		s.cells[i].Revealed = true
		s.outcome = Lost
		return []Point{s.params.point(i)}, nil
	}

	opened := s.flood(i)

	if s.Won() {
		s.outcome = Won
	}

	points := make([]Point, len(opened))
	for k, j := range opened {
		points[k] = s.params.point(j)
	}
	return points, nil
}

// flood reveals cell i and, while the cells it reaches have no mined
// neighbours, everything around them. It must not be called on a mine.
func (s *GameState) flood(i int) []int {
	if s.cells[i].Revealed {
		return nil
	}

	var opened []int
	stack := []int{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.cells[j].Revealed {
			continue
		}
		s.cells[j].Revealed = true
		opened = append(opened, j)

		if s.cells[j].Adjacent != 0 {
			continue
		}
		s.params.neighbours(j, func(k int) {
			if !s.cells[k].Revealed {
				stack = append(stack, k)
			}
		})
	}
	return opened
}

// Won reports whether every safe cell has been revealed.
func (s *GameState) Won() bool {
	for _, c := range s.cells {
		if !c.Mine && !c.Revealed {
			return false
		}
	}
	return true
}

// RevealAllMines marks every mine as exposed. The outcome does not change.
func (s *GameState) RevealAllMines() []Point {
	var points []Point
	for i := range s.cells {
		if s.cells[i].Mine {
			s.cells[i].Exposed = true
			points = append(points, s.params.point(i))
		}
	}
	return points
}

func (s *GameState) Mines() (count int) {
	for _, c := range s.cells {
		if c.Mine {
			count++
		}
	}
	return
}

func (s *GameState) View() Grid {
	grid := make(Grid, len(s.cells))
	for i, c := range s.cells {
		grid[i] = c.View()
	}
	return grid
}

func (s *GameState) String() string {
	return s.View().ToString(s.params.Cols)
}
