package domain

import "strings"

// Difficulty selects how many cells the generator carves out of a full grid.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// RemovedCells returns the carve target for a difficulty. The generator may
// stop short of the target when every remaining cell is load-bearing for
// uniqueness.
func (d Difficulty) RemovedCells() int {
	switch d {
	case Easy:
		return 35 // 46 clues remain
	case Hard:
		return 55 // 26 clues remain
	default:
		return 45 // 36 clues remain
	}
}

// String returns the lowercase difficulty token.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a token to a Difficulty, case-insensitively.
// Unrecognized tokens map to Medium; that is the documented fallback,
// not an error.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}
