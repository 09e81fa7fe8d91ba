package models

// User is the users table row. PasswordHash is empty for OAuth accounts.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	AuthProvider string
	AuditFields
}
