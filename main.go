package main

import (
	"os"

	"github.com/palinopr/vidopt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
