package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/swiftcargo/logistics_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		CompanyRepo:   newPgxCompanyRepository(dbPool),
		OfficeRepo:    newPgxOfficeRepository(dbPool),
		ClientRepo:    newPgxClientRepository(dbPool),
		EmployeeRepo:  newPgxEmployeeRepository(dbPool),
		ShipmentRepo:  newPgxShipmentRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
