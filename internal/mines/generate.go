package mines

import (
	"math/rand/v2"
)

// GenerateMines places p.MineCount mines on distinct cells chosen uniformly
// at random. The layout depends only on the values drawn from r.
func GenerateMines(p GameParams, r *rand.Rand) ([]bool, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	grid := make([]bool, p.Size())

	candidates := make([]int, p.Size())
	for i := range candidates {
		candidates[i] = i
	}

	/*
	 * Pick n off the list at random, moving the last candidate into the
	 * slot just taken so every pick is a single draw.
	 */
	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return grid, nil
}

// CountAdjacent returns, for every cell, the number of mines among its
// neighbours. Mine cells are left at zero.
func CountAdjacent(p GameParams, mines []bool) []int8 {
	counts := make([]int8, len(mines))
	for i, mine := range mines {
		if !mine {
			continue
		}
		p.neighbours(i, func(j int) {
			if !mines[j] {
				counts[j]++
			}
		})
	}
	return counts
}
