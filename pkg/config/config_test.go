package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "APP_NAME", "LOG_LEVEL", "DB_DRIVER", "DATABASE_URL", "DB_HOST", "DB_PORT",
		"DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "JWT_SECRET", "JWT_ISSUER",
		"HTTP_HOST", "HTTP_PORT", "AUTH_BCRYPT_COST", "AUTH_PROTECT_PRODUCT_WRITES",
		"PRODUCTS_LEGACY_MERGE", "SEED_ADMIN_EMAIL", "SEED_ADMIN_PASSWORD",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "catalogo-api", cfg.App.Name)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Auth.ProtectProductWrites)
	assert.False(t, cfg.Products.LegacyMerge)
	assert.Equal(t, "postgres://postgres:@localhost:5432/catalogo?sslmode=disable", cfg.DB.ConnectionString())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("AUTH_BCRYPT_COST", "4")
	t.Setenv("AUTH_PROTECT_PRODUCT_WRITES", "true")
	t.Setenv("PRODUCTS_LEGACY_MERGE", "1")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Auth.ProtectProductWrites)
	assert.True(t, cfg.Products.LegacyMerge)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ValoresInvalidosUsanDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "no-es-numero")
	t.Setenv("PRODUCTS_LEGACY_MERGE", "quizas")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Products.LegacyMerge)
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.JWT.Secret = "x"
	cfg.DB.Driver = "mysql"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")

	cfg.DB.Driver = DriverPostgres
	cfg.Auth.BcryptCost = 99
	assert.Error(t, cfg.Validate())
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss/word", DBName: "d", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@h:5432/d?sslmode=require", c.DSN())
}
