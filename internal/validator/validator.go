package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// IsValid reports whether placing v at pos is legal given the rest of the
// board. The cell at pos itself is ignored (wildcard), so the predicate also
// works for re-checking a value already in place.
func IsValid(b *domain.Board, v uint8, pos domain.CellCoord) bool {
	r, c := pos.Row, pos.Col
	for i := 0; i < 9; i++ {
		if b.Values[r][i] == v && i != c {
			return false
		}
		if b.Values[i][c] == v && i != r {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b.Values[br+dr][bc+dc] == v && (br+dr != r || bc+dc != c) {
				return false
			}
		}
	}
	return true
}

// IsValidBoard reports whether no filled cell conflicts with another in its
// row, column, or box. An all-empty board is trivially valid. The board is
// not mutated. This checks consistency, not completeness.
func IsValidBoard(b *domain.Board) bool {
	ok, _, _ := New().Validate(context.Background(), b)
	return ok
}

// FastValidator scans each unit once with a bitmask and reports the
// conflicting cells, so a UI can highlight them.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := b.Values[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
