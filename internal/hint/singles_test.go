package hint

import (
	"context"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// Row 0 holds 2..9, so only 1 fits at (0,0).
	var b domain.Board
	for c := 1; c < 9; c++ {
		b.Values[0][c] = uint8(c + 1)
	}

	h, ok, err := NewSingles().Hint(context.Background(), &b)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a naked single")
	}
	if h.Cell != (domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatalf("hint cell = %+v, want (0,0)", h.Cell)
	}
	if h.Value != 1 {
		t.Fatalf("hint value = %d, want 1", h.Value)
	}
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	var b domain.Board
	_, ok, err := NewSingles().Hint(context.Background(), &b)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if ok {
		t.Fatal("empty board has no naked single")
	}
}
