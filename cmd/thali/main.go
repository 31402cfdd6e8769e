package main

import (
	"os"

	"github.com/spektr-org/thali/cmd/thali/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
