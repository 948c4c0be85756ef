package main

import "svw.info/sudoku-solver/internal/cli"

func main() {
	cli.Execute()
}
