package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ccse-trainer/backend/internal/api"
	"github.com/ccse-trainer/backend/internal/domain/questionbank"
	"github.com/ccse-trainer/backend/internal/infrastructure/config"
	"github.com/ccse-trainer/backend/internal/service"
	"github.com/ccse-trainer/backend/internal/store"

	_ "github.com/ccse-trainer/backend/docs" // generated swagger docs
)

// @title           CCSE Trainer API
// @version         1.0
// @description     Study companion for the CCSE citizenship exam — timed quiz sessions, weighted practice of weak questions, and per-question score tracking.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
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
	logger.Info("question bank loaded", "questions", bank.Len())

	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	scores := store.NewScoreStore(db, logger)
	sessionStore := store.NewSessionStore(db, logger)

	sessions := service.NewSessionService(bank, sessionStore, scores, logger)
	practice := service.NewPracticeService(bank, scores, logger)
	study := service.NewStudyService(bank, scores, logger)

	handler := api.NewHandler(bank, sessions, practice, study, scores, logger)

	// Countdown ticks once a second; expiry submits the session.
	tickerDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				sessions.Tick(now)
			case <-tickerDone:
				return
			}
		}
	}()
	defer close(tickerDone)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
