package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/free-predict/infra/config"
	"github.com/drakos74/free-predict/internal/logger"
)

func main() {

	cfg := config.MustLoad("predict")
	logger.Init(cfg.LogLevel, cfg.Console)

	ctx, cnl := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cnl()

	err := run(ctx, cfg, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("prediction run failed")
	}
}
