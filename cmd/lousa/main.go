package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/mvbarbosa/lousa/internal/api"
	"github.com/mvbarbosa/lousa/internal/cli"
	"github.com/mvbarbosa/lousa/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := api.LoadConfig()

	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}

	client, err := api.NewClient(cfg, observer)
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	app := &cli.App{
		Store: store.New(client, time.Now()),
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
