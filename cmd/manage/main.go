// manage ejecuta las tareas administrativas sobre la base de datos configurada.
//
// Uso: go run ./cmd/manage <create|seed|drop>
//
//	create  crea las tablas products y users si no existen
//	seed    inserta los productos fijos (y el admin si SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD están definidos)
//	drop    elimina ambas tablas
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/security"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: manage <create|seed|drop>")
		os.Exit(2)
	}
	cmd := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	switch cmd {
	case "create":
		err = postgres.CreateSchema(ctx, pool)
		if err == nil {
			log.Info().Msg("tablas creadas")
		}
	case "seed":
		var admin *entity.User
		admin, err = seedAdmin(cfg)
		if err != nil {
			break
		}
		var skipped bool
		skipped, err = postgres.Seed(ctx, postgres.NewTxRunner(pool), admin)
		if err == nil {
			log.Info().Int("products", len(postgres.SeedProducts())).Msg("tablas pobladas")
			if skipped {
				log.Warn().Str("email", admin.Email).Msg("el admin ya existía, se omitió")
			}
		}
	case "drop":
		err = postgres.DropSchema(ctx, pool)
		if err == nil {
			log.Info().Msg("tablas eliminadas")
		}
	default:
		err = fmt.Errorf("comando desconocido %q (create|seed|drop)", cmd)
	}

	if err != nil {
		pool.Close()
		log.Fatal().Err(err).Str("cmd", cmd).Msg("comando fallido")
	}
}

// seedAdmin construye el admin opcional con el password ya hasheado.
func seedAdmin(cfg *config.Config) (*entity.User, error) {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		return nil, nil
	}
	hash, err := security.NewBcryptHasher(cfg.Auth.BcryptCost).Hash(cfg.Seed.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	name := "Admin"
	return &entity.User{
		Name:         &name,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
	}, nil
}
