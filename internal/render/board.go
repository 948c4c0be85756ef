// Package render draws boards for terminal output.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudoku-solver/internal/domain"
)

type Theme struct {
	Given lipgloss.Style
	Value lipgloss.Style
	Empty lipgloss.Style
	Frame lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Given: lipgloss.NewStyle().Bold(true),
		Value: lipgloss.NewStyle(),
		Empty: lipgloss.NewStyle().Faint(true),
		Frame: lipgloss.NewStyle().Faint(true),
	}
}

// Board renders b as a 9x9 grid with 3x3 box separators. Givens are bold,
// solver-filled cells plain, empties a faint dot.
func Board(b *domain.Board) string {
	return BoardWith(b, DefaultTheme())
}

func BoardWith(b *domain.Board, th Theme) string {
	var sb strings.Builder
	rule := th.Frame.Render("------+-------+------")
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			sb.WriteString(rule)
			sb.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteString(th.Frame.Render("| "))
			}
			v := b.Values[r][c]
			switch {
			case v == 0:
				sb.WriteString(th.Empty.Render("."))
			case b.Fixed[r][c]:
				sb.WriteString(th.Given.Render(strconv.Itoa(int(v))))
			default:
				sb.WriteString(th.Value.Render(strconv.Itoa(int(v))))
			}
			if c != 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
