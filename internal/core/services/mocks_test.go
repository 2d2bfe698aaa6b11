package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"google.golang.org/api/idtoken"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
)

// Shared repository mocks for the service test suites in this package.

// Ensure the mocks implement the facades they stand in for.
var (
	_ portsrepo.FuneralHomeRepositoryFacade  = (*MockFuneralHomeRepository)(nil)
	_ portsrepo.BranchRepositoryFacade       = (*MockBranchRepository)(nil)
	_ portsrepo.UserRepositoryFacade         = (*MockUserRepository)(nil)
	_ portsrepo.ServiceRepositoryFacade      = (*MockServiceRepository)(nil)
	_ portsrepo.AssignmentRepositoryFacade   = (*MockAssignmentRepository)(nil)
	_ portsrepo.TransactionRepositoryFacade  = (*MockTransactionRepository)(nil)
	_ portsrepo.CollaboratorRepositoryFacade = (*MockCollaboratorRepository)(nil)
	_ portsrepo.PayrollRepositoryFacade      = (*MockPayrollRepository)(nil)
	_ portsrepo.VehicleRepositoryFacade      = (*MockVehicleRepository)(nil)
	_ portsrepo.QuotaRepositoryFacade        = (*MockQuotaRepository)(nil)
	_ portsrepo.ReportingRepository          = (*MockReportingRepository)(nil)
	_ portssvc.TokenSvcFacade                = (*MockTokenService)(nil)
	_ portssvc.GoogleOAuthSvcFacade          = (*MockGoogleOAuthService)(nil)
)

// --- Mock FuneralHomeRepository ---
type MockFuneralHomeRepository struct {
	mock.Mock
}

func (m *MockFuneralHomeRepository) FindFuneralHomeByID(ctx context.Context, funeralHomeID string) (*domain.FuneralHome, error) {
	args := m.Called(ctx, funeralHomeID)
	var home *domain.FuneralHome
	if args.Get(0) != nil {
		home = args.Get(0).(*domain.FuneralHome)
	}
	return home, args.Error(1)
}

func (m *MockFuneralHomeRepository) UpdateFuneralHome(ctx context.Context, home domain.FuneralHome) error {
	return m.Called(ctx, home).Error(0)
}

func (m *MockFuneralHomeRepository) CreateTenant(ctx context.Context, home domain.FuneralHome, branch domain.Branch, admin domain.User, assignment domain.UserBranch) error {
	return m.Called(ctx, home, branch, admin, assignment).Error(0)
}

// --- Mock BranchRepository ---
type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) FindBranchByID(ctx context.Context, funeralHomeID, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, funeralHomeID, branchID)
	var branch *domain.Branch
	if args.Get(0) != nil {
		branch = args.Get(0).(*domain.Branch)
	}
	return branch, args.Error(1)
}

func (m *MockBranchRepository) ListBranches(ctx context.Context, funeralHomeID string, includeInactive bool) ([]domain.Branch, error) {
	args := m.Called(ctx, funeralHomeID, includeInactive)
	var branches []domain.Branch
	if args.Get(0) != nil {
		branches = args.Get(0).([]domain.Branch)
	}
	return branches, args.Error(1)
}

func (m *MockBranchRepository) ListBranchIDsByUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

func (m *MockBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockBranchRepository) MarkBranchInactive(ctx context.Context, funeralHomeID, branchID, updatedBy string) error {
	return m.Called(ctx, funeralHomeID, branchID, updatedBy).Error(0)
}

func (m *MockBranchRepository) AssignUserToBranch(ctx context.Context, assignment domain.UserBranch) error {
	return m.Called(ctx, assignment).Error(0)
}

func (m *MockBranchRepository) RemoveUserFromBranch(ctx context.Context, userID, branchID string) error {
	return m.Called(ctx, userID, branchID).Error(0)
}

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

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, funeralHomeID string, includeInactive bool) ([]domain.User, error) {
	args := m.Called(ctx, funeralHomeID, includeInactive)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) MarkUserInactive(ctx context.Context, funeralHomeID, userID, updatedBy string) error {
	return m.Called(ctx, funeralHomeID, userID, updatedBy).Error(0)
}

// --- Mock ServiceRepository ---
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, funeralHomeID, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, funeralHomeID, serviceID)
	var service *domain.Service
	if args.Get(0) != nil {
		service = args.Get(0).(*domain.Service)
	}
	return service, args.Error(1)
}

func (m *MockServiceRepository) ListServices(ctx context.Context, funeralHomeID string, filter domain.ServiceFilter) ([]domain.Service, error) {
	args := m.Called(ctx, funeralHomeID, filter)
	var services []domain.Service
	if args.Get(0) != nil {
		services = args.Get(0).([]domain.Service)
	}
	return services, args.Error(1)
}

func (m *MockServiceRepository) NextServiceNumber(ctx context.Context, funeralHomeID string) (int, error) {
	args := m.Called(ctx, funeralHomeID)
	return args.Int(0), args.Error(1)
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRepository) DeleteService(ctx context.Context, funeralHomeID, serviceID string) error {
	return m.Called(ctx, funeralHomeID, serviceID).Error(0)
}

// --- Mock AssignmentRepository ---
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) ListAssignmentsByService(ctx context.Context, funeralHomeID, serviceID string) ([]domain.ServiceAssignment, error) {
	args := m.Called(ctx, funeralHomeID, serviceID)
	var assignments []domain.ServiceAssignment
	if args.Get(0) != nil {
		assignments = args.Get(0).([]domain.ServiceAssignment)
	}
	return assignments, args.Error(1)
}

func (m *MockAssignmentRepository) ListAssignmentsForMonth(ctx context.Context, funeralHomeID string, year, month int) ([]domain.ServiceAssignment, error) {
	args := m.Called(ctx, funeralHomeID, year, month)
	var assignments []domain.ServiceAssignment
	if args.Get(0) != nil {
		assignments = args.Get(0).([]domain.ServiceAssignment)
	}
	return assignments, args.Error(1)
}

func (m *MockAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.ServiceAssignment) error {
	return m.Called(ctx, assignment).Error(0)
}

func (m *MockAssignmentRepository) DeleteAssignment(ctx context.Context, funeralHomeID, assignmentID string) error {
	return m.Called(ctx, funeralHomeID, assignmentID).Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, funeralHomeID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, funeralHomeID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, funeralHomeID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, funeralHomeID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, funeralHomeID, transactionID string) error {
	return m.Called(ctx, funeralHomeID, transactionID).Error(0)
}

// --- Mock CollaboratorRepository ---
type MockCollaboratorRepository struct {
	mock.Mock
}

func (m *MockCollaboratorRepository) FindCollaboratorByID(ctx context.Context, funeralHomeID, collaboratorID string) (*domain.Collaborator, error) {
	args := m.Called(ctx, funeralHomeID, collaboratorID)
	var collaborator *domain.Collaborator
	if args.Get(0) != nil {
		collaborator = args.Get(0).(*domain.Collaborator)
	}
	return collaborator, args.Error(1)
}

func (m *MockCollaboratorRepository) ListCollaborators(ctx context.Context, funeralHomeID string, filter domain.CollaboratorFilter) ([]domain.Collaborator, error) {
	args := m.Called(ctx, funeralHomeID, filter)
	var collaborators []domain.Collaborator
	if args.Get(0) != nil {
		collaborators = args.Get(0).([]domain.Collaborator)
	}
	return collaborators, args.Error(1)
}

func (m *MockCollaboratorRepository) SaveCollaborator(ctx context.Context, collaborator domain.Collaborator) error {
	return m.Called(ctx, collaborator).Error(0)
}

func (m *MockCollaboratorRepository) UpdateCollaborator(ctx context.Context, collaborator domain.Collaborator) error {
	return m.Called(ctx, collaborator).Error(0)
}

func (m *MockCollaboratorRepository) MarkCollaboratorInactive(ctx context.Context, funeralHomeID, collaboratorID, updatedBy string) error {
	return m.Called(ctx, funeralHomeID, collaboratorID, updatedBy).Error(0)
}

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) FindPeriodByID(ctx context.Context, funeralHomeID, periodID string) (*domain.PayrollPeriod, error) {
	args := m.Called(ctx, funeralHomeID, periodID)
	var period *domain.PayrollPeriod
	if args.Get(0) != nil {
		period = args.Get(0).(*domain.PayrollPeriod)
	}
	return period, args.Error(1)
}

func (m *MockPayrollRepository) FindPeriodByMonth(ctx context.Context, funeralHomeID string, year, month int) (*domain.PayrollPeriod, error) {
	args := m.Called(ctx, funeralHomeID, year, month)
	var period *domain.PayrollPeriod
	if args.Get(0) != nil {
		period = args.Get(0).(*domain.PayrollPeriod)
	}
	return period, args.Error(1)
}

func (m *MockPayrollRepository) ListPeriods(ctx context.Context, funeralHomeID string) ([]domain.PayrollPeriod, error) {
	args := m.Called(ctx, funeralHomeID)
	var periods []domain.PayrollPeriod
	if args.Get(0) != nil {
		periods = args.Get(0).([]domain.PayrollPeriod)
	}
	return periods, args.Error(1)
}

func (m *MockPayrollRepository) FindReceiptByID(ctx context.Context, funeralHomeID, receiptID string) (*domain.PaymentReceipt, error) {
	args := m.Called(ctx, funeralHomeID, receiptID)
	var receipt *domain.PaymentReceipt
	if args.Get(0) != nil {
		receipt = args.Get(0).(*domain.PaymentReceipt)
	}
	return receipt, args.Error(1)
}

func (m *MockPayrollRepository) ListReceiptsByPeriod(ctx context.Context, funeralHomeID, periodID string) ([]domain.PaymentReceipt, error) {
	args := m.Called(ctx, funeralHomeID, periodID)
	var receipts []domain.PaymentReceipt
	if args.Get(0) != nil {
		receipts = args.Get(0).([]domain.PaymentReceipt)
	}
	return receipts, args.Error(1)
}

func (m *MockPayrollRepository) SavePeriod(ctx context.Context, period domain.PayrollPeriod) error {
	return m.Called(ctx, period).Error(0)
}

func (m *MockPayrollRepository) UpdatePeriod(ctx context.Context, period domain.PayrollPeriod) error {
	return m.Called(ctx, period).Error(0)
}

func (m *MockPayrollRepository) ReplaceReceipts(ctx context.Context, funeralHomeID, periodID string, receipts []domain.PaymentReceipt) error {
	return m.Called(ctx, funeralHomeID, periodID, receipts).Error(0)
}

// --- Mock VehicleRepository ---
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepository) FindVehicleByID(ctx context.Context, funeralHomeID, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, funeralHomeID, vehicleID)
	var vehicle *domain.Vehicle
	if args.Get(0) != nil {
		vehicle = args.Get(0).(*domain.Vehicle)
	}
	return vehicle, args.Error(1)
}

func (m *MockVehicleRepository) ListVehicles(ctx context.Context, funeralHomeID string, branchID *string) ([]domain.Vehicle, error) {
	args := m.Called(ctx, funeralHomeID, branchID)
	var vehicles []domain.Vehicle
	if args.Get(0) != nil {
		vehicles = args.Get(0).([]domain.Vehicle)
	}
	return vehicles, args.Error(1)
}

func (m *MockVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepository) DeleteVehicle(ctx context.Context, funeralHomeID, vehicleID string) error {
	return m.Called(ctx, funeralHomeID, vehicleID).Error(0)
}

// --- Mock QuotaRepository ---
type MockQuotaRepository struct {
	mock.Mock
}

func (m *MockQuotaRepository) FindQuotaByID(ctx context.Context, funeralHomeID, quotaID string) (*domain.MortuaryQuota, error) {
	args := m.Called(ctx, funeralHomeID, quotaID)
	var quota *domain.MortuaryQuota
	if args.Get(0) != nil {
		quota = args.Get(0).(*domain.MortuaryQuota)
	}
	return quota, args.Error(1)
}

func (m *MockQuotaRepository) ListQuotas(ctx context.Context, funeralHomeID string, filter domain.QuotaFilter) ([]domain.MortuaryQuota, error) {
	args := m.Called(ctx, funeralHomeID, filter)
	var quotas []domain.MortuaryQuota
	if args.Get(0) != nil {
		quotas = args.Get(0).([]domain.MortuaryQuota)
	}
	return quotas, args.Error(1)
}

func (m *MockQuotaRepository) SaveQuota(ctx context.Context, quota domain.MortuaryQuota) error {
	return m.Called(ctx, quota).Error(0)
}

func (m *MockQuotaRepository) UpdateQuota(ctx context.Context, quota domain.MortuaryQuota) error {
	return m.Called(ctx, quota).Error(0)
}

func (m *MockQuotaRepository) DeleteQuota(ctx context.Context, funeralHomeID, quotaID string) error {
	return m.Called(ctx, funeralHomeID, quotaID).Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListTenantServices(ctx context.Context, funeralHomeID string, desde, hasta *time.Time) ([]domain.Service, error) {
	args := m.Called(ctx, funeralHomeID, desde, hasta)
	var services []domain.Service
	if args.Get(0) != nil {
		services = args.Get(0).([]domain.Service)
	}
	return services, args.Error(1)
}

func (m *MockReportingRepository) ListTenantTransactions(ctx context.Context, funeralHomeID string, desde, hasta *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, funeralHomeID, desde, hasta)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockReportingRepository) ListTenantExpenses(ctx context.Context, funeralHomeID string, desde, hasta *time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, funeralHomeID, desde, hasta)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockReportingRepository) CountQuotasByStatus(ctx context.Context, funeralHomeID string, estado domain.QuotaStatus) (int, error) {
	args := m.Called(ctx, funeralHomeID, estado)
	return args.Int(0), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	var payload *idtoken.Payload
	if args.Get(0) != nil {
		payload = args.Get(0).(*idtoken.Payload)
	}
	return payload, args.Error(1)
}
