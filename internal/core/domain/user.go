package domain

// User is an authenticated account. AuthProvider is empty for password
// accounts and "google" for OAuth-created ones.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt; empty for OAuth accounts
	AuthProvider string `json:"authProvider,omitempty"`
	AuditFields
}
