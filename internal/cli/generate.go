package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/generator"
	"svw.info/sudoku-solver/internal/render"
	"svw.info/sudoku-solver/internal/solver"
)

func generateCmd() *cobra.Command {
	var difficulty string
	var seed int64
	var showSolution bool
	var asJSON bool

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			diff := domain.ParseDifficulty(difficulty)

			g := generator.NewUniqueGenerator(solver.NewBacktrackingSolver())
			p, st, err := g.Generate(cmd.Context(), seed, diff)
			if err != nil {
				return err
			}
			logger.Debug("generated", "seed", seed, "difficulty", diff.String(),
				"clues", p.Board.Filled(), "steps", st.Steps, "dur", st.Duration.Round(time.Millisecond))

			if asJSON {
				if !showSolution {
					p.Solution = nil
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}

			fmt.Printf("Generated %s puzzle (seed %d, %d clues):\n", diff, seed, p.Board.Filled())
			fmt.Print(render.Board(&p.Board))
			if showSolution {
				fmt.Println("\nSolution:")
				fmt.Print(render.Board(p.Solution))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy|medium|hard")
	c.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = derive from time)")
	c.Flags().BoolVar(&showSolution, "solution", false, "also print the solved grid")
	c.Flags().BoolVar(&asJSON, "json", false, "emit the puzzle as JSON")
	return c
}
