package auth

import (
	"context"
	"strconv"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer

	decoyOnce sync.Once
	decoy     string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// RegisterUser hashea el password y persiste el usuario con is_admin=false.
// El email duplicado lo detecta la restricción UNIQUE del almacén (domain.ErrEmailAlreadyExists);
// no se consulta antes para no abrir una carrera entre la consulta y el insert.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" {
		return nil, domain.Required("email")
	}
	if in.Password == "" {
		return nil, domain.Required("password")
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		IsAdmin:      false,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite un token con subject = id del usuario.
// Email inexistente y password incorrecto devuelven el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// mismo trabajo de bcrypt que un password incorrecto
		uc.hasher.Check(in.Password, uc.decoyHash())
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Check(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.tokens.Issue(strconv.FormatInt(user.ID, 10), user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, nil
}

// decoyHash hash de referencia, con el cost del hasher, para los logins con email inexistente.
func (uc *AuthUseCase) decoyHash() string {
	uc.decoyOnce.Do(func() {
		uc.decoy, _ = uc.hasher.Hash("decoy-password")
	})
	return uc.decoy
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}
