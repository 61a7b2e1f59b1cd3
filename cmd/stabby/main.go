// Command stabby runs the terminal demo.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"

	"github.com/edwinsyarief/stabby/internal/config"
	"github.com/edwinsyarief/stabby/internal/game"
	"github.com/edwinsyarief/stabby/internal/logger"
)

func main() {
	if err := run(); err != nil {
		if eris.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "stabby: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadArgs(os.Args[1:])
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return eris.Wrapf(err, "failed to open log file %s", cfg.LogFile)
	}
	defer logFile.Close()

	log, err := logger.New(cfg.LogLevel, logFile)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "failed to create screen")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(cfg, log, screen)
	if err := g.Initialize(); err != nil {
		return err
	}
	defer g.Destroy()

	if err := g.Run(ctx); err != nil {
		log.Error().Err(err).Msg("game failed")
		return err
	}
	return nil
}
