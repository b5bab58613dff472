package entity

// User representa una cuenta registrada. El email es único en el almacén.
type User struct {
	ID           int64
	Name         *string
	Email        string
	PasswordHash string // bcrypt hash, nunca el password plano
	IsAdmin      bool
}
