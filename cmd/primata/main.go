package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/leeehvinicius/primata-console/internal/api"
	"github.com/leeehvinicius/primata-console/internal/cli"
	"github.com/leeehvinicius/primata-console/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}

	client := api.NewClient(api.Config{
		Endpoint:   cfg.Endpoint,
		Token:      cfg.Token,
		TimeoutMs:  cfg.TimeoutMs,
		MaxRetries: cfg.MaxRetries,
	}, observer)

	app := &cli.App{
		Appointments: client,
		Config:       cfg,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
