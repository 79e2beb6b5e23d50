package main

import (
	"errors"
	"flag"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/barstock-api/pkg/config"
	"github.com/jhoicas/barstock-api/pkg/logger"
)

// Aplica las migraciones de migrations/ contra la base configurada.
// Uso: go run ./cmd/migration [-down]
func main() {
	down := flag.Bool("down", false, "revierte la última migración en lugar de aplicar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	m, err := migrate.New("file://migrations", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("migraciones al día")
}
