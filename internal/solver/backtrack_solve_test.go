package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
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

func TestSolveUnder1s(t *testing.T) {
	in := &domain.Board{Values: sample}
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (steps=%d dur=%v)", err, st.Steps, st.Duration)
	}
	// no zeros
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out.Values[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
		}
	}
	// valid by fast validator
	ok, conf, err := validator.New().Validate(ctx, out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, steps=%d", st.Duration, st.Steps)
}

func TestSolveLeavesInputUntouched(t *testing.T) {
	in := &domain.Board{Values: sample}
	before := *in
	s := NewBacktrackingSolver()
	if _, _, err := s.Solve(context.Background(), in); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if *in != before {
		t.Fatal("Solve mutated the caller's board")
	}
}

func TestSolvePreservesClues(t *testing.T) {
	in := &domain.Board{Values: sample}
	s := NewBacktrackingSolver()
	out, _, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := sample[r][c]; v != 0 && out.Values[r][c] != v {
				t.Fatalf("clue at r=%d c=%d changed from %d to %d", r, c, v, out.Values[r][c])
			}
		}
	}
}

func TestSolveFullBoardSingleStep(t *testing.T) {
	s := NewBacktrackingSolver()
	solved, _, err := s.Solve(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	out, st, err := s.Solve(context.Background(), solved)
	if err != nil {
		t.Fatalf("re-solving a full board failed: %v", err)
	}
	if st.Steps != 1 {
		t.Fatalf("full board should solve in exactly 1 step, got %d", st.Steps)
	}
	if !out.Equal(solved) {
		t.Fatal("re-solving a full board changed it")
	}
}

func TestSolveNoSolution(t *testing.T) {
	// Row 0 holds 1..8 with one empty cell; the 9 below that cell blocks
	// the only remaining candidate. The board itself has no conflicts.
	var b domain.Board
	for c := 0; c < 8; c++ {
		b.Values[0][c] = uint8(c + 1)
	}
	b.Values[1][8] = 9
	if !validator.IsValidBoard(&b) {
		t.Fatal("test board should have no pre-existing conflicts")
	}

	s := NewBacktrackingSolver()
	out, st, err := s.Solve(context.Background(), &b)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("want ErrNoSolution, got %v", err)
	}
	if out != nil {
		t.Fatal("failed solve should not return a board")
	}
	if st.Steps != 1 {
		t.Fatalf("dead-end at the first empty cell should cost 1 step, got %d", st.Steps)
	}
}

func TestSolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewBacktrackingSolver()
	_, _, err := s.Solve(ctx, &domain.Board{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
