package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que el dominio distingue.
const (
	codeUniqueViolation        = "23505"
	codeNotNullViolation       = "23502"
	codeStringDataRightTrunc   = "22001"
	codeNumericValueOutOfRange = "22003"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == codeUniqueViolation
}

// isNotNullViolation verifica si falta una columna obligatoria (p. ej. products.name).
func isNotNullViolation(err error) bool {
	return pgErrorCode(err) == codeNotNullViolation
}

// isValueOutOfRange verifica si un valor no cabe en la columna (texto largo o número fuera de rango).
func isValueOutOfRange(err error) bool {
	code := pgErrorCode(err)
	return code == codeStringDataRightTrunc || code == codeNumericValueOutOfRange
}
