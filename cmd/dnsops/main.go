package main

import (
	"log/slog"
	"os"

	"github.com/lite-lake/hetznerdns/internal/infrastructure/logger"
	"github.com/lite-lake/hetznerdns/internal/interfaces/cli"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("DNSOPS_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logFormat := os.Getenv("DNSOPS_LOG_FORMAT")

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    logFormat,
		AddSource: os.Getenv("DNSOPS_DEBUG") != "",
	})

	cli.Execute()
}
