package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	sqliteadapter "github.com/ericfisherdev/widgetpanel/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/widgetpanel/internal/adapter/driving/tui"
	"github.com/ericfisherdev/widgetpanel/internal/config"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
	"github.com/ericfisherdev/widgetpanel/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "widgetpanel-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, cfg.SlogLevel(), cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var prefStore driven.PreferenceStore
	if cfg.Persistence {
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()

		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			return err
		}
		prefStore = sqliteadapter.NewPreferenceRepo(db)
	}

	logger.Info("tui starting", "scope", cfg.TUIScope, "persistence", cfg.Persistence)

	final, err := tea.NewProgram(
		tui.New(ctx, prefStore, cfg.TUIScope, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
