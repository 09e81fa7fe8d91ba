package dto

import (
	"time"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
)

// UpdateProfileRequest replaces the business profile of the calling user.
type UpdateProfileRequest struct {
	Business        BusinessInfoRequest `json:"business" binding:"required"`
	Banking         BankingInfoRequest  `json:"banking"`
	DefaultCurrency string              `json:"defaultCurrency" binding:"required,uppercase,len=3"`
	DefaultTemplate string              `json:"defaultTemplate"`
}

// ProfileResponse defines the data returned for a business profile.
type ProfileResponse struct {
	ProfileID       string              `json:"profileID"`
	Business        domain.BusinessInfo `json:"business"`
	Banking         domain.BankingInfo  `json:"banking"`
	DefaultCurrency string              `json:"defaultCurrency"`
	DefaultTemplate string              `json:"defaultTemplate"`
	CreatedAt       time.Time           `json:"createdAt"`
	LastUpdatedAt   time.Time           `json:"lastUpdatedAt"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID:       p.ProfileID,
		Business:        p.Business,
		Banking:         p.Banking,
		DefaultCurrency: p.DefaultCurrency,
		DefaultTemplate: string(p.DefaultTemplate),
		CreatedAt:       p.CreatedAt,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}

// LogoUploadResponse returns the blob store URL of an uploaded logo.
type LogoUploadResponse struct {
	LogoURL string `json:"logoURL"`
}
