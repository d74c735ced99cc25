package main

import (
	"fmt"
	"os"

	"planner-backend/internal/commands"
	"planner-backend/internal/config"
	"planner-backend/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel)

	if err := commands.Execute(cfg); err != nil {
		os.Exit(1)
	}
}
