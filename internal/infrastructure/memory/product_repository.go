// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory y tests).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo guarda productos en un mapa protegido por RWMutex. Los ids son secuenciales desde 1.
type ProductRepo struct {
	mu     sync.RWMutex
	items  map[int64]entity.Product
	nextID int64
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[int64]entity.Product)}
}

// List devuelve copias de todos los productos ordenados por id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		list = append(list, cloneProduct(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

// Create asigna el siguiente id. Name vacío equivale a la violación NOT NULL de PostgreSQL.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.Name == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	product.ID = r.nextID
	r.items[product.ID] = *cloneProduct(*product)
	return nil
}

// Update reemplaza el producto guardado; domain.ErrNotFound si no existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if product.Name == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[product.ID] = *cloneProduct(*product)
	return nil
}

// Delete elimina el producto; domain.ErrNotFound si no existe.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func cloneProduct(p entity.Product) *entity.Product {
	out := p
	if p.Description != nil {
		d := *p.Description
		out.Description = &d
	}
	if p.Stock != nil {
		s := *p.Stock
		out.Stock = &s
	}
	return &out
}
