package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FuneralHomeRepo:  newPgxFuneralHomeRepository(dbPool),
		BranchRepo:       newPgxBranchRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		ServiceRepo:      newPgxServiceRepository(dbPool),
		AssignmentRepo:   newPgxAssignmentRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		CollaboratorRepo: newPgxCollaboratorRepository(dbPool),
		PayrollRepo:      newPgxPayrollRepository(dbPool),
		CatalogRepo:      newPgxCatalogRepository(dbPool),
		VehicleRepo:      newPgxVehicleRepository(dbPool),
		SupplierRepo:     newPgxSupplierRepository(dbPool),
		QuotaRepo:        newPgxQuotaRepository(dbPool),
		ReportingRepo:    newPgxReportingRepository(dbPool),
	}
}
