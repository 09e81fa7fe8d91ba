package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/models"
)

// ToModelProfile converts a domain Profile to a profiles table row
func ToModelProfile(d domain.Profile) (models.Profile, error) {
	business, err := json.Marshal(d.Business)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to marshal business info: %w", err)
	}
	banking, err := json.Marshal(d.Banking)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to marshal banking info: %w", err)
	}
	return models.Profile{
		ProfileID:       d.ProfileID,
		OwnerUserID:     d.OwnerUserID,
		Business:        business,
		Banking:         banking,
		DefaultCurrency: d.DefaultCurrency,
		DefaultTemplate: string(d.DefaultTemplate),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainProfile converts a profiles table row to a domain Profile
func ToDomainProfile(m models.Profile) (domain.Profile, error) {
	var business domain.BusinessInfo
	if err := json.Unmarshal(m.Business, &business); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to unmarshal business info: %w", err)
	}
	var banking domain.BankingInfo
	if err := json.Unmarshal(m.Banking, &banking); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to unmarshal banking info: %w", err)
	}
	return domain.Profile{
		ProfileID:       m.ProfileID,
		OwnerUserID:     m.OwnerUserID,
		Business:        business,
		Banking:         banking,
		DefaultCurrency: m.DefaultCurrency,
		DefaultTemplate: domain.ParseTemplateID(m.DefaultTemplate),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}, nil
}
