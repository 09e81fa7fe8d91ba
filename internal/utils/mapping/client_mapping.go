package mapping

import (
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/models"
)

// ToModelClient converts a domain Client to a clients table row
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		OwnerUserID: d.OwnerUserID,
		Name:        d.Name,
		Email:       d.Email,
		Address:     d.Address,
		Phone:       d.Phone,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a clients table row to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		OwnerUserID: m.OwnerUserID,
		ClientInfo: domain.ClientInfo{
			Name:    m.Name,
			Email:   m.Email,
			Address: m.Address,
			Phone:   m.Phone,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of client rows to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
