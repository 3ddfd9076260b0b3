package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/loop"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML, JSON or TOML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// The terminal is in raw mode while playing, so logs only go to a file.
	logger, closer, err := config.NewLogger(settings.Log, "rockfield", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := loop.Run(ctx, os.Stdin, os.Stdout, loop.Options{
		Config: settings.Game,
		Logger: logger,
	})
	stop()
	_ = term.Restore(fd, oldState)

	if runErr != nil {
		logger.Error("game stopped", "err", runErr)
		fmt.Fprintf(os.Stderr, "game error: %v\n", runErr)
		closer.Close()
		os.Exit(1)
	}
}
