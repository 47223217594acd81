package main

import "github.com/sweeplab/minesweep/cmd"

func main() {
	cmd.Execute()
}
