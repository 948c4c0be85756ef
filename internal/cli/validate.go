package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/validator"
)

func validateCmd() *cobra.Command {
	var boardPath string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check a board for row/column/box conflicts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := loadBoard(boardPath)
			if err != nil {
				return err
			}
			ok, conflicts, err := validator.New().Validate(cmd.Context(), b)
			if err != nil {
				return err
			}
			if !ok {
				for _, cc := range conflicts {
					fmt.Printf("conflict at row %d, col %d\n", cc.Row, cc.Col)
				}
				return errors.New("board has conflicts")
			}
			fmt.Println("OK")
			return nil
		},
	}

	c.Flags().StringVarP(&boardPath, "board", "b", "", "JSON board file ('-' for stdin) (required)")
	_ = c.MarkFlagRequired("board")
	return c
}
