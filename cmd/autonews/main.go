package main

import (
	"os"

	"autonews/cmd/handlers"
	"autonews/internal/logger"
)

func main() {
	logger.Init()
	if err := handlers.Execute(); err != nil {
		os.Exit(1)
	}
}
