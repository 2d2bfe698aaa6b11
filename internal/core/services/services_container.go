package services

import (
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/platform/config"
)

// NewServiceContainer wires every application service with its repositories.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config, receiptRenderer ReceiptPDFRenderer) portssvc.ServiceContainer {
	tokenSvc := NewTokenService(cfg)
	googleSvc := NewGoogleOAuthService(cfg)

	return portssvc.ServiceContainer{
		Auth:         NewAuthService(repos.FuneralHomeRepo, repos.UserRepo, tokenSvc, googleSvc),
		Token:        tokenSvc,
		GoogleOAuth:  googleSvc,
		User:         NewUserService(repos.UserRepo, repos.BranchRepo),
		FuneralHome:  NewFuneralHomeService(repos.FuneralHomeRepo),
		Branch:       NewBranchService(repos.BranchRepo),
		Case:         NewCaseService(repos.ServiceRepo, repos.AssignmentRepo, repos.CollaboratorRepo),
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.ServiceRepo),
		Expense:      NewExpenseService(repos.ExpenseRepo),
		Collaborator: NewCollaboratorService(repos.CollaboratorRepo),
		Payroll: NewPayrollService(
			repos.PayrollRepo,
			repos.CollaboratorRepo,
			repos.AssignmentRepo,
			repos.ServiceRepo,
			repos.FuneralHomeRepo,
			receiptRenderer,
		),
		Catalog:   NewCatalogService(repos.CatalogRepo, repos.BranchRepo),
		Vehicle:   NewVehicleService(repos.VehicleRepo, repos.BranchRepo),
		Supplier:  NewSupplierService(repos.SupplierRepo),
		Quota:     NewQuotaService(repos.QuotaRepo, repos.ServiceRepo),
		Reporting: NewReportingService(repos.ReportingRepo, repos.PayrollRepo),
	}
}
