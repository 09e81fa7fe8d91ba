package services

import (
	portsrepo "github.com/invoicecraft/invoice_craft_app/internal/core/ports/repositories"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.InvoiceSvc = NewInvoiceService(
		repos.InvoiceRepo,
		WithProfileReader(repos.ProfileRepo),
		WithLogoUploads(repos.Blobs, cfg.MaxInvoiceLogoSizeBytes),
	)
	container.ClientSvc = NewClientService(repos.ClientRepo)
	container.ProfileSvc = NewProfileService(repos.ProfileRepo, repos.Blobs, cfg.MaxProfileLogoSizeBytes)
	container.UserSvc = NewUserService(repos.UserRepo)
	container.CurrencySvc = NewCurrencyService()
	container.TemplateSvc = NewTemplateService()

	// Export depends on invoice reads so ownership checks stay in one place.
	container.ExportSvc = NewExportService(container.InvoiceSvc)

	container.TokenSvc = NewTokenService(cfg)
	container.AuthSvc = NewAuthService(repos.UserRepo, container.TokenSvc)
	container.GoogleOAuthSvc = NewGoogleOAuthService(cfg, repos.UserRepo, container.TokenSvc)

	return container
}
