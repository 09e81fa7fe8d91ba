package dto

import (
	"time"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a client record.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// ClientResponse defines the data returned for a client record.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		Name:          c.Name,
		Email:         c.Email,
		Address:       c.Address,
		Phone:         c.Phone,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client to DTOs.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
