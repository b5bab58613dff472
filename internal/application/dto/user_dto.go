package dto

// RegisterRequest entrada para registro: name opcional, email y password obligatorios.
type RegisterRequest struct {
	Name     *string `json:"name"`
	Email    string  `json:"email" validate:"required"`
	Password string  `json:"password" validate:"required,max=72"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID      int64   `json:"id"`
	Name    *string `json:"name"`
	Email   string  `json:"email"`
	IsAdmin bool    `json:"is_admin"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con el token JWT.
type LoginResponse struct {
	Token   string `json:"token"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}
