// Package samples provides three canned puzzles for callers that want a
// known starting state without running the generator. The digit layouts are
// fixed; tests and clients may assert on individual cells.
package samples

import "svw.info/sudoku-solver/internal/domain"

var easy = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var medium = [9][9]uint8{
	{0, 0, 0, 2, 6, 0, 7, 0, 1},
	{6, 8, 0, 0, 7, 0, 0, 9, 0},
	{1, 9, 0, 0, 0, 4, 5, 0, 0},
	{8, 2, 0, 1, 0, 0, 0, 4, 0},
	{0, 0, 4, 6, 0, 2, 9, 0, 0},
	{0, 5, 0, 0, 0, 3, 0, 2, 8},
	{0, 0, 9, 3, 0, 0, 0, 7, 4},
	{0, 4, 0, 0, 5, 0, 0, 3, 6},
	{7, 0, 3, 0, 1, 8, 0, 0, 0},
}

var hard = [9][9]uint8{
	{0, 0, 0, 6, 0, 0, 4, 0, 0},
	{7, 0, 0, 0, 0, 3, 6, 0, 0},
	{0, 0, 0, 0, 9, 1, 0, 8, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 5, 0, 1, 8, 0, 0, 0, 3},
	{0, 0, 0, 3, 0, 6, 0, 4, 5},
	{0, 4, 0, 2, 0, 0, 0, 6, 0},
	{9, 0, 3, 0, 0, 0, 0, 0, 0},
	{0, 2, 0, 0, 0, 0, 1, 0, 0},
}

// Get returns a fresh copy of the sample puzzle for a difficulty, with the
// clue cells marked fixed.
func Get(d domain.Difficulty) *domain.Board {
	var b domain.Board
	switch d {
	case domain.Easy:
		b.Values = easy
	case domain.Hard:
		b.Values = hard
	default:
		b.Values = medium
	}
	b.MarkGivens()
	return &b
}
