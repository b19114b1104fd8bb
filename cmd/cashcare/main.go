package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/cashcare-dev/cashcare/internal/commands"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
