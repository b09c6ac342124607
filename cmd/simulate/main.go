// Smoke-runs the whole engine against an in-memory store: one timed
// session answered concurrently, then a practice walk until the weak
// pool drains. Needs BANK_PATH, touches no database.
package main

import (
	"log/slog"
	"os"

	"github.com/ccse-trainer/backend/internal/domain/questionbank"
	"github.com/ccse-trainer/backend/internal/infrastructure/config"
	"github.com/ccse-trainer/backend/internal/simulation"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	bankFile, err := os.Open(cfg.BankPath)
	if err != nil {
		logger.Error("failed to open question bank", "path", cfg.BankPath, "error", err)
		os.Exit(1)
	}
	bank, err := questionbank.Load(bankFile)
	bankFile.Close()
	if err != nil {
		logger.Error("failed to load question bank", "path", cfg.BankPath, "error", err)
		os.Exit(1)
	}

	if err := simulation.Run(bank, logger); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}
