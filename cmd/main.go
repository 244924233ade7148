package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tinoosan/contas/internal/config"
	"github.com/tinoosan/contas/internal/httpapi"
	"github.com/tinoosan/contas/internal/service/account"
	"github.com/tinoosan/contas/internal/service/journal"
	"github.com/tinoosan/contas/internal/storage/jsonl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	// Logger (slog to stdout). Level via LOG_LEVEL; format via LOG_FORMAT (json|text, default json)
	logger := buildLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Error("data directory unavailable", "dir", cfg.DataDir, "err", err)
		os.Exit(1)
	}

	accounts := jsonl.NewAccountStore(cfg.AccountsPath(), logger)
	movements := jsonl.NewLedgerStore(cfg.LedgerPath(), accounts, logger)

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: httpapi.New(
			account.New(accounts, accounts, movements, logger),
			journal.New(movements, movements, accounts, logger),
			httpapi.Options{
				PublicDir:    cfg.PublicDir,
				Index:        cfg.Index,
				MaxBodyBytes: cfg.MaxBodyBytes,
				Ready:        []httpapi.ReadyChecker{accounts, movements},
			},
			logger,
		).Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("contas service listening", "addr", srv.Addr, "accounts", accounts.Path(), "ledger", movements.Path())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownWait)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// parseLogLevel maps env values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
	if strings.ToLower(strings.TrimSpace(format)) == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
