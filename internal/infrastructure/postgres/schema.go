package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const createProductsTableSQL = `
CREATE TABLE IF NOT EXISTS products (
    id          BIGSERIAL PRIMARY KEY,
    name        VARCHAR(100) NOT NULL,
    description TEXT,
    price       NUMERIC,
    stock       INTEGER
);`

const createUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
    id       BIGSERIAL PRIMARY KEY,
    name     TEXT,
    email    TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    is_admin BOOLEAN NOT NULL DEFAULT FALSE
);`

const dropTablesSQL = `DROP TABLE IF EXISTS products, users;`

// CreateSchema crea las tablas products y users si no existen.
func CreateSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, createProductsTableSQL); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	if _, err := q.Exec(ctx, createUsersTableSQL); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// DropSchema elimina ambas tablas.
func DropSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, dropTablesSQL); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return nil
}

// SeedProducts devuelve el catálogo fijo que inserta el comando seed.
func SeedProducts() []*entity.Product {
	fruits, vegetables := "Fresh Fruits", "Fresh Vegetables"
	fruitsStock, vegetablesStock := 100, 200
	return []*entity.Product{
		{
			Name:        "Fruits",
			Description: &fruits,
			Price:       decimal.NewNullDecimal(decimal.RequireFromString("15.99")),
			Stock:       &fruitsStock,
		},
		{
			Name:        "Vegetables",
			Description: &vegetables,
			Price:       decimal.NewNullDecimal(decimal.RequireFromString("10.99")),
			Stock:       &vegetablesStock,
		},
	}
}

// Seed inserta el catálogo fijo y, si admin != nil, el usuario administrador.
// Un admin cuyo email ya existe se omite y se informa con skippedAdmin=true.
func Seed(ctx context.Context, tx *TxRunner, admin *entity.User) (skippedAdmin bool, err error) {
	err = tx.Run(ctx, func(products repository.ProductRepository, _ repository.UserRepository) error {
		for _, p := range SeedProducts() {
			if err := products.Create(ctx, p); err != nil {
				return fmt.Errorf("seed product %q: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil || admin == nil {
		return false, err
	}
	// El admin va en su propia transacción: un email duplicado aborta la tx en PostgreSQL.
	err = tx.Run(ctx, func(_ repository.ProductRepository, users repository.UserRepository) error {
		return users.Create(ctx, admin)
	})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return true, nil
	}
	return false, err
}
