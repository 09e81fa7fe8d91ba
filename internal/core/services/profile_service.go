package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/currencies"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portsrepo "github.com/invoicecraft/invoice_craft_app/internal/core/ports/repositories"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// profileService implements the ProfileSvcFacade interface
type profileService struct {
	BaseService
	profileRepo  portsrepo.ProfileRepositoryFacade
	blobs        portsrepo.BlobStore
	maxLogoBytes int64
}

// NewProfileService creates a new profile service
func NewProfileService(repo portsrepo.ProfileRepositoryFacade, blobs portsrepo.BlobStore, maxLogoBytes int64) portssvc.ProfileSvcFacade {
	return &profileService{
		profileRepo:  repo,
		blobs:        blobs,
		maxLogoBytes: maxLogoBytes,
	}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context, ownerUserID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, ownerUserID string) (*domain.Profile, error) {
	if _, err := currencies.Resolve(req.DefaultCurrency); err != nil {
		return nil, apperrors.NewValidationError("unknown currency code", "defaultCurrency")
	}

	banking := domain.BankingInfo{
		BankName:      req.Banking.BankName,
		AccountNumber: req.Banking.AccountNumber,
		SwiftCode:     req.Banking.SwiftCode,
		IBAN:          req.Banking.IBAN,
	}
	if missing := banking.MissingTrioFields(); len(missing) > 0 {
		return nil, apperrors.NewValidationError(
			"bank name, account number and SWIFT code must be provided together", missing...)
	}

	now := time.Now()

	profile, err := s.profileRepo.FindProfileByOwner(ctx, ownerUserID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to find profile: %w", err)
		}
		profile = &domain.Profile{
			ProfileID:   uuid.NewString(),
			OwnerUserID: ownerUserID,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				CreatedBy: ownerUserID,
			},
		}
	}

	profile.Business = domain.BusinessInfo{
		Name:    req.Business.Name,
		Email:   req.Business.Email,
		Address: req.Business.Address,
		Phone:   req.Business.Phone,
		LogoURL: req.Business.LogoURL,
	}
	profile.Banking = banking
	profile.DefaultCurrency = req.DefaultCurrency
	profile.DefaultTemplate = domain.ParseTemplateID(req.DefaultTemplate)
	profile.LastUpdatedAt = now
	profile.LastUpdatedBy = ownerUserID

	if err := s.profileRepo.SaveProfile(ctx, *profile); err != nil {
		s.LogError(ctx, err, "Failed to save profile", slog.String("owner_user_id", ownerUserID))
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

func (s *profileService) UploadLogo(ctx context.Context, ownerUserID, filename string, size int64, reader io.Reader) (*dto.LogoUploadResponse, error) {
	data, mimeType, err := readLogoImage(reader, size, s.maxLogoBytes)
	if err != nil {
		return nil, err
	}

	url, err := s.blobs.Upload(ctx, ownerUserID, filename, mimeType, data)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload logo", slog.String("owner_user_id", ownerUserID))
		return nil, fmt.Errorf("failed to upload logo: %w", err)
	}

	// Keep the profile pointing at the latest logo when one exists.
	profile, err := s.profileRepo.FindProfileByOwner(ctx, ownerUserID)
	if err == nil && profile != nil {
		previous := profile.Business.LogoURL
		profile.Business.LogoURL = url
		profile.LastUpdatedAt = time.Now()
		profile.LastUpdatedBy = ownerUserID
		if err := s.profileRepo.SaveProfile(ctx, *profile); err != nil {
			s.LogError(ctx, err, "Failed to store logo URL on profile", slog.String("owner_user_id", ownerUserID))
		} else if previous != "" && previous != url {
			if err := s.blobs.Delete(ctx, previous); err != nil {
				s.LogError(ctx, err, "Failed to delete replaced logo", slog.String("url", previous))
			}
		}
	}

	s.LogInfo(ctx, "Logo uploaded", slog.String("owner_user_id", ownerUserID), slog.String("url", url))
	return &dto.LogoUploadResponse{LogoURL: url}, nil
}
