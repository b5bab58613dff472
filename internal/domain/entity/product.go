package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// Límites de las columnas de products; se comprueban antes de llegar al almacén
// para que PostgreSQL y el almacén en memoria acepten lo mismo.
const (
	// name VARCHAR(100), en caracteres
	ProductNameMaxLen = 100

	// stock INTEGER
	ProductStockMin = math.MinInt32
	ProductStockMax = math.MaxInt32

	// NUMERIC sin precisión declarada
	ProductPriceMaxIntDigits = 131072
	ProductPriceMaxScale     = 16383
)

// Product representa un producto del catálogo.
// Description, Price y Stock admiten NULL en la tabla; Name es obligatorio.
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.NullDecimal
	Stock       *int
}
