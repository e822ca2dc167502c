package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/buildinfo"
	"github.com/dmitrijs2005/gophjournal/internal/client/cli"
	"github.com/dmitrijs2005/gophjournal/internal/client/config"
	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/services"
	"github.com/dmitrijs2005/gophjournal/internal/client/storage"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
)

const minShutdownTimeout = 10 * time.Second

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func run(cfg *config.Config) error {
	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	initSignalHandler(cancel)

	store := storage.New(cfg.DatabasePath, logger)
	journal := services.NewJournalService(store, logger, services.Options{
		Author:          models.Author{Name: cfg.AuthorName, Avatar: cfg.AuthorAvatar},
		TimestampLayout: cfg.TimestampLayout,
		PersistTimeout:  cfg.PersistTimeout,
	})
	app := cli.NewApp(cfg, journal, logger, os.Stdin, os.Stdout)

	// The shell blocks on stdin, so a signal is observed here rather than
	// inside the loop.
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		logger.Info(ctx, "signal received, shutting down")
	}

	shutdown(logger, journal, store, cfg.PersistTimeout)
	return err
}

// shutdown waits for pending writes and releases the database.
func shutdown(logger logging.Logger, journal *services.JournalService, store *storage.Store, timeout time.Duration) {
	if timeout < minShutdownTimeout {
		timeout = minShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := journal.Close(ctx); err != nil {
		logger.Error(ctx, "pending changes may be lost", "error", err)
	}
	if err := store.Close(); err != nil {
		logger.Error(ctx, "close database", "error", err)
	}
}
