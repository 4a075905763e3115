package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cheikhtourad19/artshop-cli/internal/buildinfo"
	"github.com/cheikhtourad19/artshop-cli/internal/client/cli"
	"github.com/cheikhtourad19/artshop-cli/internal/client/config"
	"github.com/cheikhtourad19/artshop-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewZerolog(cfg.LogLevel)
	app := cli.NewApp(cfg, logger)

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
