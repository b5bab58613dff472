package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// FieldError entrada inválida en un campo concreto. errors.Is(err, ErrInvalidInput) es true.
// Error() es el texto que se devuelve al cliente: "<field> is <reason>".
type FieldError struct {
	Field  string
	Reason string // required | invalid
}

// Motivos de FieldError.
const (
	ReasonRequired = "required"
	ReasonInvalid  = "invalid"
)

func (e *FieldError) Error() string { return e.Field + " is " + e.Reason }

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// Required construye el error de campo obligatorio.
func Required(field string) error { return &FieldError{Field: field, Reason: ReasonRequired} }

// Invalid construye el error de campo con valor no admitido.
func Invalid(field string) error { return &FieldError{Field: field, Reason: ReasonInvalid} }
