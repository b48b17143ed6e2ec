package main

import (
	"os"

	"crashkit/cmd/crashkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
