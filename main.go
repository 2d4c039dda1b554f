package main

import (
	"os"

	"github.com/alanh90/TimesheetSimplifier/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
