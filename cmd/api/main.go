package main

import (
	"context"
	"os"
	"time"

	"envanter-backend/internal/app"
	"envanter-backend/internal/config"
	"envanter-backend/internal/database"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	fiberApp, db, rdb, err := app.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.PingContext(ctx); err != nil {
				log.Warn().Err(err).Msg("database ping failed")
			}
		}
	} else {
		log.Warn().Msg("DATABASE_URL not set, running without database")
	}

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis ping failed")
	}

	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting server")
	if err := fiberApp.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
