package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmorvan/cadence/internal/app"
	"github.com/tmorvan/cadence/internal/config"
	"github.com/tmorvan/cadence/internal/engine/ws"
	"github.com/tmorvan/cadence/internal/icons"
	"github.com/tmorvan/cadence/internal/notify"
	"github.com/tmorvan/cadence/internal/session"
	"github.com/tmorvan/cadence/internal/settings"
)

const startupTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cadence: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	icons.Init(cfg.Icons)

	log, closeLog := openLogger()
	defer closeLog()

	store, err := settings.Open()
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer store.Close()

	client := ws.New(ws.Config{
		URL:              cfg.Engine.URL,
		ReconnectInitial: cfg.ReconnectInitial(),
		ReconnectMax:     cfg.ReconnectMax(),
	}, log)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), startupTimeout)
	err = client.Connect(connectCtx)
	cancelConnect()
	if err != nil {
		return fmt.Errorf("connect to engine at %s: %w", cfg.Engine.URL, err)
	}
	defer client.Close()

	sess := session.New(client, log)
	if v, verr := store.Volume(); verr == nil {
		// Seeds the volume readout until the first engine snapshot.
		sess.Store().PatchVolume(v.Volume, v.Muted)
	}
	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	sess.Start(startCtx)
	cancelStart()
	defer sess.Stop()

	var notifier notify.Notifier
	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			log.Warn("desktop notifications unavailable", "error", err)
		} else {
			notifier = n
		}
	}

	p := tea.NewProgram(app.New(app.Options{
		Session:  sess,
		Settings: store,
		Notifier: notifier,
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// openLogger writes to the XDG state log file so slog output never
// corrupts the alternate screen. Logging is best effort.
func openLogger() (*slog.Logger, func()) {
	path, err := xdg.StateFile("cadence/cadence.log")
	if err == nil {
		f, ferr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if ferr == nil {
			return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
}
