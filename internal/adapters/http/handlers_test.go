package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/generator"
	"svw.info/sudoku-solver/internal/hint"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/samples"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(
		s,
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestSampleEndpoint(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/sample?difficulty=MEDIUM", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}
	var resp sampleResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Difficulty != "medium" {
		t.Fatalf("difficulty %q, want medium", resp.Difficulty)
	}
	if resp.Board.Values[0][3] != 2 {
		t.Fatalf("medium sample (0,3) = %d, want 2", resp.Board.Values[0][3])
	}
}

func TestSolveEndpoint(t *testing.T) {
	mux := newTestMux(t)
	b := samples.Get(domain.Easy)
	w := postJSON(t, mux, "/api/solve", solveReq{Board: b.Values})

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}
	var resp solveResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Solved || resp.Steps == 0 {
		t.Fatalf("solved=%v steps=%d", resp.Solved, resp.Steps)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if resp.Board[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
		}
	}
}

func TestSolveEndpointRejectsConflicts(t *testing.T) {
	mux := newTestMux(t)
	var grid [9][9]uint8
	grid[0][0] = 5
	grid[0][5] = 5
	w := postJSON(t, mux, "/api/solve", solveReq{Board: grid})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	mux := newTestMux(t)
	var grid [9][9]uint8
	grid[0][0] = 7
	grid[8][0] = 7
	w := postJSON(t, mux, "/api/validate", validateReq{Board: grid})

	var resp validateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.OK {
		t.Fatal("column conflict should fail validation")
	}
	if len(resp.Conflicts) == 0 {
		t.Fatal("expected conflict coordinates")
	}
}

func TestCountEndpoint(t *testing.T) {
	mux := newTestMux(t)
	b := samples.Get(domain.Medium)
	w := postJSON(t, mux, "/api/count", countReq{Board: b.Values})

	var resp countResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Unique || resp.Count != 1 {
		t.Fatalf("count=%d unique=%v, want 1/true", resp.Count, resp.Unique)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	mux := newTestMux(t)
	w := postJSON(t, mux, "/api/generate", generateReq{Difficulty: "easy", Seed: 99})

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}
	var resp generateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Seed != 99 || resp.Difficulty != "easy" {
		t.Fatalf("seed=%d difficulty=%q", resp.Seed, resp.Difficulty)
	}
	if resp.Clues < 81-domain.Easy.RemovedCells() {
		t.Fatalf("%d clues, want at least %d", resp.Clues, 81-domain.Easy.RemovedCells())
	}
	if resp.Solution == nil {
		t.Fatal("missing reference solution")
	}
}

func TestSaveAssignsIDAndLoadRoundTrips(t *testing.T) {
	mux := newTestMux(t)
	p := domain.Puzzle{Difficulty: domain.Easy}
	p.Board.Values[1][1] = 4

	w := postJSON(t, mux, "/api/save", p)
	var saved saveResp
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatal(err)
	}
	if saved.ID == "" {
		t.Fatal("save should assign an ID")
	}

	w = postJSON(t, mux, "/api/load", loadReq{ID: saved.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}
	var loaded loadResp
	if err := json.Unmarshal(w.Body.Bytes(), &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded.Puzzle == nil || loaded.Puzzle.Board.Values[1][1] != 4 {
		t.Fatal("loaded puzzle differs from saved")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", w.Code)
	}
}
