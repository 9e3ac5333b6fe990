// migrate aplica las migraciones del modelo de lectura del ERP (entornos de desarrollo y pruebas).
//
// Uso: go run ./cmd/migrate [up|down|version] [ruta/migrations]
// Por defecto: up sobre internal/infrastructure/postgres/migrations.
// La conexión sale de DATABASE_URL o DB_* (misma configuración que la API).
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jhoicas/customer-pricing-api/pkg/config"
	"github.com/jhoicas/customer-pricing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "migrate"})

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	dir := filepath.Join("internal", "infrastructure", "postgres", "migrations")
	if len(os.Args) > 2 {
		dir = os.Args[2]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("ruta de migraciones")
	}

	m, err := migrate.New("file://"+filepath.ToSlash(abs), cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar migrate")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Error().AnErr("source", srcErr).AnErr("database", dbErr).Msg("cerrar migrate")
		}
	}()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal().Err(verr).Msg("leer versión")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión del esquema")
		return
	default:
		log.Fatal().Str("cmd", cmd).Msg("comando desconocido (up|down|version)")
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("migración")
	}
	log.Info().Str("cmd", cmd).Msg("migraciones aplicadas")
}
