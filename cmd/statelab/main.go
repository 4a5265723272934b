package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/statelab/internal/cli"
	"github.com/idilsaglam/statelab/internal/config"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Root flags (apply to every subcommand)
	cfg, args, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintHelp(os.Stdout)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Hand the remaining args to the CLI runner.
	code := cli.Run(ctx, args, cli.Options{
		Config: cfg,
		Out:    os.Stdout,
		Err:    os.Stderr,
	})
	stop()
	os.Exit(code)
}
