package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) RegisterUser(ctx context.Context, user domain.User, client *domain.Client, employee *domain.Employee) error {
	args := m.Called(ctx, user, client, employee)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) FindCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

// --- Mock OfficeRepository ---

type MockOfficeRepository struct {
	mock.Mock
}

func (m *MockOfficeRepository) SaveOffice(ctx context.Context, office domain.Office) error {
	args := m.Called(ctx, office)
	return args.Error(0)
}

func (m *MockOfficeRepository) FindOfficeByID(ctx context.Context, officeID string) (*domain.Office, error) {
	args := m.Called(ctx, officeID)
	var office *domain.Office
	if args.Get(0) != nil {
		office = args.Get(0).(*domain.Office)
	}
	return office, args.Error(1)
}

func (m *MockOfficeRepository) FindOffices(ctx context.Context, companyID *string) ([]domain.Office, error) {
	args := m.Called(ctx, companyID)
	var offices []domain.Office
	if args.Get(0) != nil {
		offices = args.Get(0).([]domain.Office)
	}
	return offices, args.Error(1)
}

func (m *MockOfficeRepository) UpdateOffice(ctx context.Context, office domain.Office) error {
	args := m.Called(ctx, office)
	return args.Error(0)
}

func (m *MockOfficeRepository) DeleteOffice(ctx context.Context, officeID string) error {
	args := m.Called(ctx, officeID)
	return args.Error(0)
}

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) FindClientByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	args := m.Called(ctx, userID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context, excludeUserID string) ([]domain.Client, error) {
	args := m.Called(ctx, excludeUserID)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, userID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context, companyID *string) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) FindFirstActiveEmployee(ctx context.Context) (*domain.Employee, error) {
	args := m.Called(ctx)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// --- Mock ShipmentRepository ---

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) SaveShipment(ctx context.Context, shipment domain.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	args := m.Called(ctx, shipmentID)
	var shipment *domain.Shipment
	if args.Get(0) != nil {
		shipment = args.Get(0).(*domain.Shipment)
	}
	return shipment, args.Error(1)
}

func (m *MockShipmentRepository) FindShipmentByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	var shipment *domain.Shipment
	if args.Get(0) != nil {
		shipment = args.Get(0).(*domain.Shipment)
	}
	return shipment, args.Error(1)
}

func (m *MockShipmentRepository) FindShipments(ctx context.Context) ([]domain.Shipment, error) {
	args := m.Called(ctx)
	var shipments []domain.Shipment
	if args.Get(0) != nil {
		shipments = args.Get(0).([]domain.Shipment)
	}
	return shipments, args.Error(1)
}

func (m *MockShipmentRepository) FindShipmentsByClient(ctx context.Context, clientID string) ([]domain.Shipment, error) {
	args := m.Called(ctx, clientID)
	var shipments []domain.Shipment
	if args.Get(0) != nil {
		shipments = args.Get(0).([]domain.Shipment)
	}
	return shipments, args.Error(1)
}

func (m *MockShipmentRepository) UpdateShipment(ctx context.Context, shipment domain.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) DeleteShipment(ctx context.Context, shipmentID string) error {
	args := m.Called(ctx, shipmentID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) FindShipmentsByEmployee(ctx context.Context, employeeID string) ([]domain.Shipment, error) {
	args := m.Called(ctx, employeeID)
	var shipments []domain.Shipment
	if args.Get(0) != nil {
		shipments = args.Get(0).([]domain.Shipment)
	}
	return shipments, args.Error(1)
}

func (m *MockReportingRepository) FindShipmentsBySender(ctx context.Context, clientID string) ([]domain.Shipment, error) {
	args := m.Called(ctx, clientID)
	var shipments []domain.Shipment
	if args.Get(0) != nil {
		shipments = args.Get(0).([]domain.Shipment)
	}
	return shipments, args.Error(1)
}

func (m *MockReportingRepository) FindShipmentsByReceiver(ctx context.Context, clientID string) ([]domain.Shipment, error) {
	args := m.Called(ctx, clientID)
	var shipments []domain.Shipment
	if args.Get(0) != nil {
		shipments = args.Get(0).([]domain.Shipment)
	}
	return shipments, args.Error(1)
}

func (m *MockReportingRepository) FindUndeliveredShipments(ctx context.Context) ([]domain.Shipment, error) {
	args := m.Called(ctx)
	var shipments []domain.Shipment
	if args.Get(0) != nil {
		shipments = args.Get(0).([]domain.Shipment)
	}
	return shipments, args.Error(1)
}

func (m *MockReportingRepository) GetRevenueData(ctx context.Context, start, end *time.Time) (decimal.Decimal, int, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Int(1), args.Error(2)
}
