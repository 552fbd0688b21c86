package main

import (
	"shipping/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	if err := cmd.NewRootCommand().Execute(); err != nil {
		log.Fatalf("Error running shipping: %v", err)
	}
}
