package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductOptions ajustes de comportamiento del caso de uso.
type ProductOptions struct {
	// LegacyMerge: en Update se ignoran los valores vacíos o cero y se conserva el valor anterior.
	LegacyMerge bool
}

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	opts ProductOptions
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, opts ProductOptions) *ProductUseCase {
	return &ProductUseCase{repo: repo, opts: opts}
}

// List devuelve todos los productos ordenados por id.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create crea un nuevo producto. Una entrada fuera de los límites de la tabla
// devuelve *domain.FieldError (errors.Is domain.ErrInvalidInput).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica los campos presentes en la entrada. Devuelve (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if uc.opts.LegacyMerge {
		mergeLegacy(product, in)
	} else if err := merge(product, in); err != nil {
		return nil, err
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// borrado entre la lectura y la escritura
			return nil, nil
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func merge(p *entity.Product, in dto.UpdateProductRequest) error {
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return domain.Required("name")
		}
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Price != nil {
		p.Price = decimal.NewNullDecimal(*in.Price)
	}
	if in.Stock != nil {
		p.Stock = in.Stock
	}
	return nil
}

// mergeLegacy: 0 y "" no sobrescriben el valor guardado (PRODUCTS_LEGACY_MERGE).
func mergeLegacy(p *entity.Product, in dto.UpdateProductRequest) {
	if in.Name != nil && *in.Name != "" {
		p.Name = *in.Name
	}
	if in.Description != nil && *in.Description != "" {
		p.Description = in.Description
	}
	if in.Price != nil && !in.Price.IsZero() {
		p.Price = decimal.NewNullDecimal(*in.Price)
	}
	if in.Stock != nil && *in.Stock != 0 {
		p.Stock = in.Stock
	}
}

// validateProduct aplica los límites de las columnas de products.
func validateProduct(p *entity.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Required("name")
	}
	if utf8.RuneCountInString(p.Name) > entity.ProductNameMaxLen {
		return domain.Invalid("name")
	}
	if p.Stock != nil && (*p.Stock < entity.ProductStockMin || *p.Stock > entity.ProductStockMax) {
		return domain.Invalid("stock")
	}
	if p.Price.Valid {
		exp := int(p.Price.Decimal.Exponent())
		if -exp > entity.ProductPriceMaxScale || p.Price.Decimal.NumDigits()+exp > entity.ProductPriceMaxIntDigits {
			return domain.Invalid("price")
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}
