package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/veidly/seedctl/internal/seeder"
)

func main() {
	// Best effort: ADMIN_PASSWORD may come from a .env next to the binary.
	_ = godotenv.Load()

	err := seeder.Run()
	if err != nil {
		os.Exit(1)
	}
}
