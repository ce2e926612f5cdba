package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	slowtunisia "github.com/indigoandlavender/slow-tunisia"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := slowtunisia.LoadConfig()
	log := slowtunisia.NewLogger(cfg.AppEnv)

	app := slowtunisia.New(cfg)
	defer app.Close()

	log.Info().Str("addr", cfg.Addr).Str("env", cfg.AppEnv).Msg("starting server")
	if err := app.Start(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
