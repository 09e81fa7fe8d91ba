package services

import (
	"context"
	"io"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// ProfileReaderSvc defines read operations for the business profile
type ProfileReaderSvc interface {
	GetProfile(ctx context.Context, ownerUserID string) (*domain.Profile, error)
}

// ProfileWriterSvc defines write operations for the business profile
type ProfileWriterSvc interface {
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, ownerUserID string) (*domain.Profile, error)

	// UploadLogo validates and stores a logo image, returning its public URL.
	UploadLogo(ctx context.Context, ownerUserID, filename string, size int64, reader io.Reader) (*dto.LogoUploadResponse, error)
}

// ProfileSvcFacade combines all profile-related service interfaces
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
}
