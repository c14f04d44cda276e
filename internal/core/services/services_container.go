package services

import (
	portsrepo "github.com/swiftcargo/logistics_app/internal/core/ports/repositories"
	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Office = NewOfficeService(repos.OfficeRepo, repos.CompanyRepo)
	container.Client = NewClientService(repos.ClientRepo, repos.UserRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.CompanyRepo, repos.OfficeRepo, repos.UserRepo)
	container.Shipment = NewShipmentService(repos.ShipmentRepo, repos.ClientRepo, repos.EmployeeRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.ShipmentRepo, repos.ClientRepo, repos.EmployeeRepo)

	return container
}
