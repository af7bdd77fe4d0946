package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/paylexhq/paylex/telemetry"
	"github.com/paylexhq/paylex/web"
)

type ServeCmd struct {
	Port     int    `help:"Port to listen on." default:"8080" env:"PAYLEX_PORT"`
	Host     string `help:"Host to bind to." default:"127.0.0.1" env:"PAYLEX_HOST"`
	Accounts string `help:"JSON file with the default account set." env:"PAYLEX_ACCOUNTS"`
	Watch    bool   `help:"Reload the accounts file when it changes." short:"w" env:"PAYLEX_WATCH"`
}

func (cmd *ServeCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	accountsFile := cmd.Accounts
	if accountsFile != "" {
		abs, err := filepath.Abs(accountsFile)
		if err != nil {
			return fmt.Errorf("failed to resolve absolute path: %w", err)
		}
		if _, err := os.Stat(abs); err != nil {
			return fmt.Errorf("failed to access accounts file: %w", err)
		}
		accountsFile = abs
	}

	version := Version
	if version == "" {
		version = "dev"
	}
	commitSHA := CommitSHA
	if commitSHA == "" {
		commitSHA = "local"
	}

	server := web.NewWithVersion(cmd.Port, accountsFile, version, commitSHA)
	server.Host = cmd.Host
	server.WatchEnabled = cmd.Watch

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	if accountsFile != "" {
		printInfof(ctx.Stdout, "Default accounts: %s", pathStyle.Render(accountsFile))
		if cmd.Watch {
			printInfof(ctx.Stdout, "Watching accounts file for changes")
		}
	}

	return server.Start(runCtx)
}
