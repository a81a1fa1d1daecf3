package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/mcoot/ghostgame/internal/cli"
)

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
