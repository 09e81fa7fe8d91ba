package domain

// Client is a saved client-list entry owned by a user. The embedded info is
// copied onto invoices at edit time; later client edits do not rewrite
// previously saved invoices.
type Client struct {
	ClientID    string `json:"clientID"`
	OwnerUserID string `json:"ownerUserID"`
	ClientInfo
	AuditFields
}
