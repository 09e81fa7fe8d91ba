package domain

// Profile is the per-user business profile: issuer identity, default banking
// coordinates and the preferred currency and template for new invoices.
type Profile struct {
	ProfileID       string      `json:"profileID"`
	OwnerUserID     string      `json:"ownerUserID"`
	Business        BusinessInfo `json:"business"`
	Banking         BankingInfo  `json:"banking"`
	DefaultCurrency string      `json:"defaultCurrency"`
	DefaultTemplate TemplateID  `json:"defaultTemplate"`
	AuditFields
}
