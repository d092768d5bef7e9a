package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophfiles/internal/buildinfo"
	"github.com/dmitrijs2005/gophfiles/internal/client/cli"
	"github.com/dmitrijs2005/gophfiles/internal/client/config"
	"github.com/dmitrijs2005/gophfiles/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewTextLogger(os.Stderr, cfg.Verbose)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "shutdown", "error", err)
		os.Exit(1)
	}
}
