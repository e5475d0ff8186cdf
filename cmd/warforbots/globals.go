package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/warforbots/internal/config"
	"github.com/lox/warforbots/internal/randutil"
	"github.com/lox/warforbots/internal/tui"
)

// Globals are the flags shared by every command
type Globals struct {
	Config  string `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	Debug   bool   `help:"Show debug logs"`
	Seed    *int64 `help:"RNG seed (random when unset)"`
	NoColor bool   `name:"no-color" help:"Disable colours"`
}

// load reads the config file and applies flag overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if g.NoColor {
		tui.DisableColor()
	}
	return cfg, nil
}

func (g *Globals) seed() int64 {
	return randutil.ResolveSeed(g.Seed)
}

func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// setupSignalHandler creates a context that is cancelled on interrupt signals
func setupSignalHandler(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
