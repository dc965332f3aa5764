package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-lut/model"
	"github.com/sheikhrachel/go-gol-lut/utils"
)

func main() {
	config := utils.DefaultConfig()
	config.Bind(flag.CommandLine)
	flag.Parse()

	if config.ConfigFile != "" {
		loaded, err := utils.LoadConfig(config.ConfigFile, config)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		config = loaded
	}

	src := model.NewSource(config.Seed)

	if config.Generations > 0 {
		buffers := model.NewBuffers(utils.GridWidth, utils.GridHeight)
		buffers.Reset(src)
		if err := printGenerations(os.Stdout, buffers, config.Generations); err != nil {
			log.Fatalf("%+v", err)
		}
		return
	}

	// Handle Ctrl+C and termination gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runInteractive(ctx, config, src); err != nil {
		stop()
		log.Fatalf("%+v", err)
	}
}

// runInteractive owns the terminal screen for the lifetime of the game
func runInteractive(ctx context.Context, config utils.Config, src rand.Source) error {
	closeLog, err := redirectLog(config.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runInteractive] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runInteractive] failed to initialize screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	return newGame(screen, src, config.Menu).Run(ctx)
}

// redirectLog sends log output to filename, or discards it, while the screen is active
func redirectLog(filename string) (func(), error) {
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "[redirectLog] failed to open log file: %+v", filename)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
