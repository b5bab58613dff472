package auth

// PasswordHasher abstrae el hash lento con sal usado para guardar passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenIssuer emite el bearer token tras un login correcto. El servicio no lo almacena.
type TokenIssuer interface {
	Issue(userID string, isAdmin bool) (string, error)
}
