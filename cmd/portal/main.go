package main

import (
	"campus-hub/internal"
	"campus-hub/portal"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps every deferred Close on the way out, main only reports.
func run() error {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := portal.New(ctx, log, config, os.Stdout)
	if err != nil {
		return fmt.Errorf("portal failed to start: %w", err)
	}
	defer p.Close()

	if err = p.Shell.Run(ctx, os.Stdin); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
