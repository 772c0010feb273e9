package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/usestring/wpjson-seven/internal/cli"
	"github.com/usestring/wpjson-seven/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Configuration comes from the environment and ./.env
	// (WP_SCHEMA_SITE, WP_SCHEMA_INSECURE, LOG_LEVEL, ...; see internal/config).
	cfg := config.Load()

	if err := cli.Command(version, cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+cli.ErrorMessage(err))
		cancel()
		os.Exit(1)
	}
}
