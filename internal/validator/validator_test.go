package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

func TestIsValidWildcardAtOwnCell(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5

	// The cell's own value never conflicts with itself.
	if !IsValid(&b, 5, domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatal("a cell's existing value should validate in place")
	}
	// But it blocks the same value elsewhere in its row, column, and box.
	if IsValid(&b, 5, domain.CellCoord{Row: 0, Col: 4}) {
		t.Fatal("row conflict not detected")
	}
	if IsValid(&b, 5, domain.CellCoord{Row: 6, Col: 0}) {
		t.Fatal("column conflict not detected")
	}
	if IsValid(&b, 5, domain.CellCoord{Row: 2, Col: 2}) {
		t.Fatal("box conflict not detected")
	}
	// A different value next to it is fine.
	if !IsValid(&b, 3, domain.CellCoord{Row: 0, Col: 1}) {
		t.Fatal("legal placement rejected")
	}
}

func TestIsValidBoard(t *testing.T) {
	var b domain.Board
	if !IsValidBoard(&b) {
		t.Fatal("empty board should be valid")
	}

	b.Values[3][0] = 7
	b.Values[3][8] = 7
	if IsValidBoard(&b) {
		t.Fatal("duplicate in row should invalidate the board")
	}
}

func TestIsValidBoardDoesNotMutate(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 1
	b.Values[4][4] = 2
	b.Values[8][8] = 3
	before := b

	_ = IsValidBoard(&b)

	if b != before {
		t.Fatal("IsValidBoard mutated the board")
	}
}

func TestValidateReportsConflicts(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 9
	b.Values[2][2] = 9 // same box

	ok, conflicts, err := New().Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("expected a box conflict")
	}
	if len(conflicts) == 0 {
		t.Fatal("expected at least one conflicting cell")
	}
}
