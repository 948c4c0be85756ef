package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/solver"
)

func countCmd() *cobra.Command {
	var boardPath string
	var max int

	c := &cobra.Command{
		Use:   "count",
		Short: "Count solutions of a board, up to a cap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := loadBoard(boardPath)
			if err != nil {
				return err
			}
			s := solver.NewBacktrackingSolver()
			n, st, err := s.CountSolutions(cmd.Context(), b, max)
			if err != nil {
				return err
			}
			logger.Debug("counted", "steps", st.Steps, "dur", st.Duration.Round(time.Millisecond))
			switch {
			case n == 0:
				fmt.Println("no solutions")
			case n == 1:
				fmt.Println("exactly one solution")
			case n >= max && max > 0:
				fmt.Printf("at least %d solutions\n", n)
			default:
				fmt.Printf("%d solutions\n", n)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&boardPath, "board", "b", "", "JSON board file ('-' for stdin) (required)")
	c.Flags().IntVar(&max, "max", solver.DefaultMaxSolutions, "stop counting at this many solutions")
	_ = c.MarkFlagRequired("board")
	return c
}
