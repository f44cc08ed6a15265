package main

import (
	"os"

	"github.com/mazurov/claude-token-refresh/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
