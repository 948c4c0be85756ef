package usecase

import (
	"context"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

func TestUnconfiguredDependenciesError(t *testing.T) {
	u := NewService(nil, nil, nil, nil, nil)
	ctx := context.Background()
	b := &domain.Board{}

	if _, _, err := u.Solve(ctx, b); err == nil {
		t.Error("Solve without a solver should fail")
	}
	if _, _, err := u.CountSolutions(ctx, b, 2); err == nil {
		t.Error("CountSolutions without a solver should fail")
	}
	if _, _, err := u.Generate(ctx, 1, domain.Easy); err == nil {
		t.Error("Generate without a generator should fail")
	}
	if _, _, err := u.Validate(ctx, b); err == nil {
		t.Error("Validate without a validator should fail")
	}
	if _, _, err := u.Hint(ctx, b); err == nil {
		t.Error("Hint without a hinter should fail")
	}
	if err := u.Save(ctx, &domain.Puzzle{ID: "x"}); err == nil {
		t.Error("Save without storage should fail")
	}
}

func TestSampleNeedsNoDependencies(t *testing.T) {
	u := NewService(nil, nil, nil, nil, nil)
	b := u.Sample(domain.Medium)
	if b == nil || b.Values[0][3] != 2 {
		t.Fatal("Sample should return the medium sample puzzle")
	}
}
