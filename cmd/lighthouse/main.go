package main

import (
	"os"

	"github.com/melih/lighthouse-desktop/cmd/lighthouse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
