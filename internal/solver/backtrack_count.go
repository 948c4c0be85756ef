package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// DefaultMaxSolutions is the minimum useful cap: it distinguishes "unique"
// from "multiple" without exploring the full solution space.
const DefaultMaxSolutions = 2

// CountSolutions counts complete assignments reachable from b, capped at
// maxSolutions (DefaultMaxSolutions when <= 0). It shares the search
// discipline of Solve but on a full board records the solution and keeps
// backtracking until the cap is hit. The caller's board is left untouched.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, b *domain.Board, maxSolutions int) (int, ports.Stats, error) {
	if maxSolutions <= 0 {
		maxSolutions = DefaultMaxSolutions
	}
	start := time.Now()
	grid := b.Values
	steps := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		steps++
		if ctx.Err() != nil {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= maxSolutions
		}
		for v := uint8(1); v <= 9; v++ {
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					grid[r][c] = 0
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Steps: steps, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}

// Unique reports whether b has exactly one completion.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	n, st, err := s.CountSolutions(ctx, b, DefaultMaxSolutions)
	return n == 1, st, err
}
