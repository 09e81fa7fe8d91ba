package models

// Client is the clients table row.
type Client struct {
	ClientID    string
	OwnerUserID string
	Name        string
	Email       string
	Address     string
	Phone       string
	AuditFields
}
