package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo indexa usuarios por email exacto. La comprobación de unicidad y el alta ocurren
// bajo el mismo lock, igual que la restricción UNIQUE en PostgreSQL.
type UserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]entity.User
	nextID  int64
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{byEmail: make(map[string]entity.User)}
}

// Create persiste el usuario o devuelve domain.ErrEmailAlreadyExists sin modificar nada.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.Email == "" || user.PasswordHash == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	r.nextID++
	user.ID = r.nextID
	r.byEmail[user.Email] = *cloneUser(*user)
	return nil
}

// GetByEmail devuelve una copia del usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

// Count número de usuarios guardados.
func (r *UserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}

func cloneUser(u entity.User) *entity.User {
	out := u
	if u.Name != nil {
		n := *u.Name
		out.Name = &n
	}
	return &out
}
