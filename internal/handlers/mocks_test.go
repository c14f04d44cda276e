package handlers_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/dto"
	"github.com/swiftcargo/logistics_app/internal/handlers"
	"github.com/swiftcargo/logistics_app/internal/platform/config"
	"github.com/swiftcargo/logistics_app/internal/utils"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}
func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) FindOrCreateUserFromGoogle(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}
func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}
func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, actor authz.Actor, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, actor, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) ListCompanies(ctx context.Context, actor authz.Actor) ([]domain.Company, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyService) CreateCompany(ctx context.Context, actor authz.Actor, req dto.CreateCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) UpdateCompany(ctx context.Context, actor authz.Actor, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, actor, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) DeleteCompany(ctx context.Context, actor authz.Actor, companyID string) error {
	args := m.Called(ctx, actor, companyID)
	return args.Error(0)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock OfficeService ---
type MockOfficeService struct {
	mock.Mock
}

func (m *MockOfficeService) GetOfficeByID(ctx context.Context, actor authz.Actor, officeID string) (*domain.Office, error) {
	args := m.Called(ctx, actor, officeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}
func (m *MockOfficeService) ListOffices(ctx context.Context, actor authz.Actor, companyID *string) ([]domain.Office, error) {
	args := m.Called(ctx, actor, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Office), args.Error(1)
}
func (m *MockOfficeService) CreateOffice(ctx context.Context, actor authz.Actor, req dto.CreateOfficeRequest) (*domain.Office, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}
func (m *MockOfficeService) UpdateOffice(ctx context.Context, actor authz.Actor, officeID string, req dto.UpdateOfficeRequest) (*domain.Office, error) {
	args := m.Called(ctx, actor, officeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}
func (m *MockOfficeService) DeleteOffice(ctx context.Context, actor authz.Actor, officeID string) error {
	args := m.Called(ctx, actor, officeID)
	return args.Error(0)
}

var _ portssvc.OfficeSvcFacade = (*MockOfficeService)(nil)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetClientByID(ctx context.Context, actor authz.Actor, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, actor, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) GetClientByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context, actor authz.Actor) ([]domain.Client, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) CreateClient(ctx context.Context, actor authz.Actor, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, actor authz.Actor, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, actor, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) DeleteClient(ctx context.Context, actor authz.Actor, clientID string) error {
	args := m.Called(ctx, actor, clientID)
	return args.Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, actor authz.Actor, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, actor, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) GetEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) ListEmployees(ctx context.Context, actor authz.Actor, companyID *string) ([]domain.Employee, error) {
	args := m.Called(ctx, actor, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) CreateEmployee(ctx context.Context, actor authz.Actor, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, actor authz.Actor, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, actor, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, actor authz.Actor, employeeID string) error {
	args := m.Called(ctx, actor, employeeID)
	return args.Error(0)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock ShipmentService ---
type MockShipmentService struct {
	mock.Mock
}

func (m *MockShipmentService) GetShipmentByID(ctx context.Context, actor authz.Actor, shipmentID string) (*domain.Shipment, error) {
	args := m.Called(ctx, actor, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}
func (m *MockShipmentService) ListShipments(ctx context.Context, actor authz.Actor) ([]domain.Shipment, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}
func (m *MockShipmentService) CreateShipment(ctx context.Context, actor authz.Actor, req dto.CreateShipmentRequest) (*domain.Shipment, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}
func (m *MockShipmentService) UpdateShipmentStatus(ctx context.Context, actor authz.Actor, shipmentID string, req dto.UpdateShipmentStatusRequest) (*domain.Shipment, error) {
	args := m.Called(ctx, actor, shipmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}
func (m *MockShipmentService) UpdateShipmentFields(ctx context.Context, actor authz.Actor, shipmentID string, req dto.UpdateShipmentFieldsRequest) (*domain.Shipment, error) {
	args := m.Called(ctx, actor, shipmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}
func (m *MockShipmentService) DeleteShipment(ctx context.Context, actor authz.Actor, shipmentID string) error {
	args := m.Called(ctx, actor, shipmentID)
	return args.Error(0)
}

var _ portssvc.ShipmentSvcFacade = (*MockShipmentService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) AllShipments(ctx context.Context, actor authz.Actor) ([]domain.Shipment, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}
func (m *MockReportingService) ShipmentsByEmployee(ctx context.Context, actor authz.Actor, employeeID string) ([]domain.Shipment, error) {
	args := m.Called(ctx, actor, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}
func (m *MockReportingService) ShipmentsBySender(ctx context.Context, actor authz.Actor, clientID string) ([]domain.Shipment, error) {
	args := m.Called(ctx, actor, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}
func (m *MockReportingService) ShipmentsByReceiver(ctx context.Context, actor authz.Actor, clientID string) ([]domain.Shipment, error) {
	args := m.Called(ctx, actor, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}
func (m *MockReportingService) UndeliveredShipments(ctx context.Context, actor authz.Actor) ([]domain.Shipment, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}
func (m *MockReportingService) RevenueByPeriod(ctx context.Context, actor authz.Actor, start, end *time.Time) (*domain.RevenueReport, error) {
	args := m.Called(ctx, actor, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// testJWTSecret signs the tokens used across the handler suites.
const testJWTSecret = "test-secret-key-that-is-long-enough"

// routerFixture bundles a router wired with mock services.
type routerFixture struct {
	router    *gin.Engine
	cfg       *config.Config
	user      *MockUserService
	token     *MockTokenService
	google    *MockGoogleOAuthService
	company   *MockCompanyService
	office    *MockOfficeService
	client    *MockClientService
	employee  *MockEmployeeService
	shipment  *MockShipmentService
	reporting *MockReportingService
}

// newRouterFixture builds a gin engine with all application routes registered
// against fresh mocks. The real AuthMiddleware runs, so requests must carry a
// signed token.
func newRouterFixture() *routerFixture {
	gin.SetMode(gin.TestMode)

	f := &routerFixture{
		cfg: &config.Config{
			JWTSecret:                  testJWTSecret,
			JWTExpiryDuration:          time.Hour,
			JWTIssuer:                  "logistics-test",
			RefreshTokenExpiryDuration: 24 * time.Hour,
		},
		user:      new(MockUserService),
		token:     new(MockTokenService),
		google:    new(MockGoogleOAuthService),
		company:   new(MockCompanyService),
		office:    new(MockOfficeService),
		client:    new(MockClientService),
		employee:  new(MockEmployeeService),
		shipment:  new(MockShipmentService),
		reporting: new(MockReportingService),
	}

	services := &portssvc.ServiceContainer{
		User:        f.user,
		Token:       f.token,
		GoogleOAuth: f.google,
		Company:     f.company,
		Office:      f.office,
		Client:      f.client,
		Employee:    f.employee,
		Shipment:    f.shipment,
		Reporting:   f.reporting,
	}

	f.router = gin.New()
	handlers.RegisterRoutes(f.router, f.cfg, services)
	return f
}

// bearerToken creates a signed access token for the given identity.
func (f *routerFixture) bearerToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), f.cfg.JWTSecret, time.Hour, f.cfg.JWTIssuer)
	if err != nil {
		panic(err)
	}
	return token
}
