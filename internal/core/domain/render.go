package domain

// SectionKind names the structural sections every template skin composes.
type SectionKind string

const (
	SectionHeader  SectionKind = "header"
	SectionBillTo  SectionKind = "billTo"
	SectionItems   SectionKind = "lineItems"
	SectionTotals  SectionKind = "totals"
	SectionNotes   SectionKind = "notes"
	SectionBanking SectionKind = "banking"
)

// RGB is a plain color triple used by template styles.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// TemplateStyle is the decorative chrome a template skin applies. It affects
// presentation only; the section structure and visibility rules are fixed by
// the shared projection.
type TemplateStyle struct {
	Accent        RGB     `json:"accent"`
	HeaderFill    RGB     `json:"headerFill"`
	HeaderText    RGB     `json:"headerText"`
	TableStripe   bool    `json:"tableStripe"`
	RuleUnder     bool    `json:"ruleUnder"` // horizontal rule under the header
	FontFamily    string  `json:"fontFamily"`
	TitleSize     float64 `json:"titleSize"`
	BodySize      float64 `json:"bodySize"`
	UppercaseHead bool    `json:"uppercaseHead"` // table header in caps
}

// HeaderSection carries business identity and invoice metadata.
type HeaderSection struct {
	BusinessName    string `json:"businessName"`
	BusinessEmail   string `json:"businessEmail"`
	BusinessAddress string `json:"businessAddress"` // line breaks preserved
	BusinessPhone   string `json:"businessPhone,omitempty"`
	LogoURL         string `json:"logoURL,omitempty"`
	InvoiceNumber   string `json:"invoiceNumber"`
	IssueDate       string `json:"issueDate"`
	DueDate         string `json:"dueDate"`
}

// BillToSection carries client identity.
type BillToSection struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"` // line breaks preserved
	Phone   string `json:"phone,omitempty"`
}

// ItemRow is one pre-formatted row of the line-items table.
type ItemRow struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`   // currency formatted
	Amount      string `json:"amount"` // currency formatted
}

// ItemsSection is the line-items table: a header row plus one row per item,
// every cell pre-formatted with the invoice currency.
type ItemsSection struct {
	Columns []string  `json:"columns"`
	Rows    []ItemRow `json:"rows"`
}

// TotalsRow is a labelled amount in the totals block.
type TotalsRow struct {
	Label      string `json:"label"`
	Amount     string `json:"amount"` // currency formatted
	Emphasized bool   `json:"emphasized"`
}

// TotalsSection always contains subtotal and total; discount and tax rows are
// present only when their rate is non-zero.
type TotalsSection struct {
	Rows []TotalsRow `json:"rows"`
}

// NotesSection holds free-text notes; omitted entirely when empty.
type NotesSection struct {
	Text string `json:"text"`
}

// BankingSection lists payment coordinates; omitted unless the trio is complete.
type BankingSection struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	SwiftCode     string `json:"swiftCode"`
	IBAN          string `json:"iban,omitempty"`
}

// RenderTree is the template-agnostic projection of an invoice, ready for
// page layout. SectionOrder controls the vertical arrangement a skin chose;
// optional sections are nil when their visibility rule says so.
type RenderTree struct {
	TemplateID   TemplateID      `json:"templateID"`
	Style        TemplateStyle   `json:"style"`
	SectionOrder []SectionKind   `json:"sectionOrder"`
	Header       *HeaderSection  `json:"header"`
	BillTo       *BillToSection  `json:"billTo"`
	Items        *ItemsSection   `json:"items"`
	Totals       *TotalsSection  `json:"totals"`
	Notes        *NotesSection   `json:"notes,omitempty"`
	Banking      *BankingSection `json:"banking,omitempty"`
}
