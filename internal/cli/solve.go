package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/render"
	"svw.info/sudoku-solver/internal/samples"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/validator"
)

func solveCmd() *cobra.Command {
	var difficulty string
	var boardPath string

	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve a sample puzzle or a board from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b *domain.Board
			if boardPath != "" {
				var err error
				b, err = loadBoard(boardPath)
				if err != nil {
					return err
				}
			} else {
				b = samples.Get(domain.ParseDifficulty(difficulty))
			}

			if !validator.IsValidBoard(b) {
				return errors.New("board has conflicts; nothing to solve")
			}

			fmt.Println("Original puzzle:")
			fmt.Print(render.Board(b))

			fmt.Println("\nSolving...")
			s := solver.NewBacktrackingSolver()
			out, st, err := s.Solve(cmd.Context(), b)
			if err != nil {
				if errors.Is(err, solver.ErrNoSolution) {
					fmt.Println("\nNo solution exists!")
					return nil
				}
				return err
			}
			fmt.Printf("\nSolved in %d steps and %.4f seconds:\n", st.Steps, st.Duration.Seconds())
			fmt.Print(render.Board(out))
			return nil
		},
	}

	c.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "sample difficulty: easy|medium|hard")
	c.Flags().StringVarP(&boardPath, "board", "b", "", "JSON board file ('-' for stdin); overrides --difficulty")
	return c
}
