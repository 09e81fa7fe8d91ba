package services

// ServiceContainer aggregates every service facade handed to the handler layer
type ServiceContainer struct {
	InvoiceSvc     InvoiceSvcFacade
	ClientSvc      ClientSvcFacade
	ProfileSvc     ProfileSvcFacade
	UserSvc        UserSvcFacade
	CurrencySvc    CurrencySvc
	ExportSvc      ExportSvc
	TemplateSvc    TemplateSvc
	AuthSvc        AuthSvc
	TokenSvc       TokenSvc
	GoogleOAuthSvc GoogleOAuthSvc
}
