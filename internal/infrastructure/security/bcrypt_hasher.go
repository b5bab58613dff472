// Package security implementa el hash de credenciales con bcrypt.
package security

import (
	"errors"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes límite de bcrypt; los bytes siguientes no entrarían en el hash.
const MaxPasswordBytes = 72

// BcryptHasher genera y verifica hashes bcrypt (la sal va incluida en el hash).
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher. Un cost fuera de rango usa bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash genera el hash del password en texto plano.
// Un password de más de MaxPasswordBytes bytes devuelve domain.Invalid("password").
func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.Invalid("password")
		}
		return "", err
	}
	return string(b), nil
}

// Check compara el password con el hash; la comparación es de tiempo constante.
func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
