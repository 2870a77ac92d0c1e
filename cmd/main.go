package main

import (
	"os"

	"github.com/humane-cli/humane/cmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
