package domain

import "fmt"

// Get returns the value at c. Coordinates outside [0,8] panic: they are a
// caller bug, not a recoverable condition.
func (b *Board) Get(c CellCoord) uint8 {
	return b.Values[c.Row][c.Col]
}

// Set writes v at c. Values outside [0,9] panic.
func (b *Board) Set(c CellCoord, v uint8) {
	if v > 9 {
		panic(fmt.Sprintf("domain: value %d out of range [0,9]", v))
	}
	b.Values[c.Row][c.Col] = v
}

// Clone returns a deep copy. Mutating the copy never affects the receiver.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// FirstEmpty scans in row-major order and returns the first empty cell.
// The scan order is part of the solver contract: it fixes the search order
// and therefore the step counts and which solution is found first.
func (b *Board) FirstEmpty() (CellCoord, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return CellCoord{Row: r, Col: c}, true
			}
		}
	}
	return CellCoord{}, false
}

// Filled reports how many cells hold a nonzero value.
func (b *Board) Filled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both boards hold the same values cell for cell.
// The Fixed mask is not compared.
func (b *Board) Equal(o *Board) bool {
	return b.Values == o.Values
}

// MarkGivens sets the Fixed mask from the current values: every nonzero
// cell becomes a given.
func (b *Board) MarkGivens() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
}
