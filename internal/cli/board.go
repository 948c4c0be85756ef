package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"svw.info/sudoku-solver/internal/domain"
)

// loadBoard reads a board from a JSON file, or from stdin when path is "-".
// Both the bare 9x9 array form and the {"board": ...} object form are
// accepted.
func loadBoard(path string) (*domain.Board, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	var b domain.Board
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &b.Values); err != nil {
			return nil, fmt.Errorf("parse board %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("parse board %s: %w", path, err)
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] > 9 {
				return nil, fmt.Errorf("parse board %s: cell (%d,%d) holds %d, want 0-9", path, r, c, b.Values[r][c])
			}
		}
	}
	b.MarkGivens()
	return &b, nil
}
