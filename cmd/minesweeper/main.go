package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vancomm/termsweeper/internal/config"
	"github.com/vancomm/termsweeper/internal/logging"
	"github.com/vancomm/termsweeper/internal/mines"
	"github.com/vancomm/termsweeper/internal/tui"
)

const usage = `usage: minesweeper [size=N] [mines=N] [seed=N] [log_file=PATH] [development=1]

Every key can also be set through the environment, e.g. MINES_SIZE=16.
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	for _, arg := range os.Args[1:] {
		if arg == "-h" || arg == "--help" {
			fmt.Fprint(os.Stderr, usage)
			return nil
		}
	}

	cfg, err := config.Load(os.Args[1:], os.Environ())
	if err != nil {
		return fmt.Errorf("%w\n\n%s", err, usage)
	}

	log, err := logging.New(cfg)
	if err != nil {
		return err
	}
	mines.Log = log

	log.Info("starting up")
	log.WithFields(cfg.Fields()).Debug("config")

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	rnd := mines.NewRand(cfg.Seed)
	board, err := mines.Reshuffle(cfg.Size, cfg.MineCount, rnd)
	if err != nil {
		return fmt.Errorf("unable to populate board: %w", err)
	}
	engine, err := mines.NewEngine(board, rnd)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	ui := tui.New(screen, engine, log)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return ui.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return ui.Interrupt()
	})

	err = g.Wait()
	log.WithFields(logrus.Fields{
		"status": engine.Status().String(),
	}).Info("shutting down")
	return err
}
