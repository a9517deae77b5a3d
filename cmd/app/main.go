package main

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"
	"hotel/shared/timezone"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 4
	usage     = "Usage: hotel <dbname> <port> <user>"
)

func main() {
	if len(os.Args) != argLength {
		fmt.Fprintln(os.Stderr, usage)

		return
	}

	cfg := config.Get()
	cfg.ApplyArgs(os.Args[1], os.Args[2], os.Args[3])

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeConsole(cfg)
	defer app.Close()

	app.HandleSignals()
	app.Serve(context.Background(), os.Stdin, os.Stdout)
}
