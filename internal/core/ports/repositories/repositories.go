package repositories

// RepositoryProvider bundles every repository facade handed to the service
// layer. Populated once at startup.
type RepositoryProvider struct {
	UserRepo      UserRepositoryFacade
	CompanyRepo   CompanyRepositoryFacade
	OfficeRepo    OfficeRepositoryFacade
	ClientRepo    ClientRepositoryFacade
	EmployeeRepo  EmployeeRepositoryFacade
	ShipmentRepo  ShipmentRepositoryFacade
	ReportingRepo ReportingRepository
}
