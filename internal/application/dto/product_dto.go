package dto

import "github.com/shopspring/decimal"

func init() {
	// price viaja como número JSON (15.99), no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateProductRequest entrada para crear un producto. Solo name es obligatorio.
type CreateProductRequest struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Description *string             `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	Stock       *int                `json:"stock"`
}

// UpdateProductRequest entrada para PUT/PATCH. Un campo nil (ausente o null) conserva el valor guardado.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	Stock       *int                `json:"stock"`
}
