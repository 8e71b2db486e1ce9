package services

// ServiceContainer bundles all application services for route registration.
type ServiceContainer struct {
	User        UserSvcFacade
	Account     AccountSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Summary     SummarySvcFacade
	Import      ImportSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
