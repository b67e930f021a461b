// main holds the entry point for the transitscope CLI.
package main

import (
	"github.com/transitlab/transitscope/cmd"
	"github.com/transitlab/transitscope/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run transitscope", err)
	}
}
