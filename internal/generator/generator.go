package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// UniqueGenerator creates puzzles with exactly one solution, using the
// injected solver both to complete the seeded grid and as the uniqueness
// oracle during carving.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// Generate builds a puzzle in two phases. Phase 1 fills the three diagonal
// boxes with independent random permutations of 1..9 (they share no
// constraints, so any permutation is locally valid, and the seeding keeps
// the deterministic solver from producing the same canonical grid every
// run), then completes the grid with the solver and keeps a copy as the
// reference solution. Phase 2 walks all 81 cells in shuffled order,
// tentatively zeroes each, and keeps the removal only while the puzzle
// still has exactly one solution, stopping at the difficulty's removal
// target. When the walk cannot reach the target the puzzle simply keeps
// more clues than requested; that is accepted behavior, not an error.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var seeded domain.Board
	for i := 0; i < 9; i += 3 {
		fillBox(rng, &seeded, i, i)
	}
	solved, st, err := g.Solver.Solve(ctx, &seeded)
	if err != nil {
		return nil, ports.Stats{Steps: st.Steps, Duration: time.Since(start)}, err
	}
	steps := st.Steps

	puz := *solved
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	target := diff.RemovedCells()
	removed := 0
	for _, pos := range positions {
		if removed >= target {
			break
		}
		r, c := pos/9, pos%9
		backup := puz.Values[r][c]
		puz.Values[r][c] = 0
		n, st, err := g.Solver.CountSolutions(ctx, &puz, 2)
		steps += st.Steps
		if err != nil {
			return nil, ports.Stats{Steps: steps, Duration: time.Since(start)}, err
		}
		if n == 1 {
			removed++
		} else {
			puz.Values[r][c] = backup
		}
	}
	puz.MarkGivens()

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      puz,
		Solution:   solved.Clone(),
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Steps: steps, Duration: time.Since(start)}, nil
}

// fillBox writes a random permutation of 1..9 into the 3x3 box at (row,col).
func fillBox(rng *rand.Rand, b *domain.Board, row, col int) {
	perm := rng.Perm(9)
	for i, p := range perm {
		b.Values[row+i/3][col+i%3] = uint8(p + 1)
	}
}
