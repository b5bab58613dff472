package security

import (
	"strings"
	"testing"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashYCheck(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, h.Check("pw1", hash))
	assert.False(t, h.Check("pw2", hash))
	assert.False(t, h.Check("", hash))
}

func TestBcryptHasher_SalDistintaPorHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	a, err := h.Hash("mismo")
	require.NoError(t, err)
	b, err := h.Hash("mismo")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Check("mismo", a))
	assert.True(t, h.Check("mismo", b))
}

func TestBcryptHasher_UsaElCostConfigurado(t *testing.T) {
	hash, err := NewBcryptHasher(bcrypt.MinCost + 1).Hash("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost, "cost fuera de rango usa el por defecto")
}

func TestBcryptHasher_HashInvalido(t *testing.T) {
	assert.False(t, NewBcryptHasher(bcrypt.MinCost).Check("pw", "no-es-un-hash"))
}

func TestBcryptHasher_PasswordDemasiadoLargo(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "password is invalid", fe.Error())

	_, err = h.Hash(strings.Repeat("a", MaxPasswordBytes))
	assert.NoError(t, err)
}
