package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/hint"
)

func hintCmd() *cobra.Command {
	var boardPath string

	c := &cobra.Command{
		Use:   "hint",
		Short: "Suggest the next naked single for a board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := loadBoard(boardPath)
			if err != nil {
				return err
			}
			h, ok, err := hint.NewSingles().Hint(cmd.Context(), b)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("no naked single found")
				return nil
			}
			fmt.Printf("row %d, col %d: %s\n", h.Cell.Row, h.Cell.Col, h.Message)
			return nil
		},
	}

	c.Flags().StringVarP(&boardPath, "board", "b", "", "JSON board file ('-' for stdin) (required)")
	_ = c.MarkFlagRequired("board")
	return c
}
