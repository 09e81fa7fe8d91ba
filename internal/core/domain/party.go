package domain

// BusinessInfo identifies the invoice issuer.
// Address is free text and may contain embedded line breaks that renderers
// must preserve.
type BusinessInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	LogoURL string `json:"logoURL,omitempty"` // blob store reference, never duplicated bytes
}

// ClientInfo identifies the invoice recipient.
type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

// BankingInfo carries payment coordinates. The bankName/accountNumber/swiftCode
// trio is jointly required: once any one is populated all three must be.
// IBAN stays independently optional. Enforced at validation time, not here.
type BankingInfo struct {
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	SwiftCode     string `json:"swiftCode,omitempty"`
	IBAN          string `json:"iban,omitempty"`
}

// IsEmpty reports whether no banking field at all is populated.
func (b BankingInfo) IsEmpty() bool {
	return b.BankName == "" && b.AccountNumber == "" && b.SwiftCode == "" && b.IBAN == ""
}

// HasCompleteTrio reports whether the jointly-required trio is fully populated.
func (b BankingInfo) HasCompleteTrio() bool {
	return b.BankName != "" && b.AccountNumber != "" && b.SwiftCode != ""
}

// MissingTrioFields returns the names of unpopulated trio fields, but only
// when at least one trio field is set. All-empty is a valid state.
func (b BankingInfo) MissingTrioFields() []string {
	if b.BankName == "" && b.AccountNumber == "" && b.SwiftCode == "" {
		return nil
	}
	var missing []string
	if b.BankName == "" {
		missing = append(missing, "bankName")
	}
	if b.AccountNumber == "" {
		missing = append(missing, "accountNumber")
	}
	if b.SwiftCode == "" {
		missing = append(missing, "swiftCode")
	}
	return missing
}
