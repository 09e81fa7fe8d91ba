package models

// Profile is the profiles table row, one per user. Business identity and
// banking coordinates are JSONB documents.
type Profile struct {
	ProfileID       string
	OwnerUserID     string
	Business        []byte // JSONB
	Banking         []byte // JSONB
	DefaultCurrency string
	DefaultTemplate string
	AuditFields
}
