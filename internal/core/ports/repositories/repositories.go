package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	FuneralHomeRepo  FuneralHomeRepositoryFacade
	BranchRepo       BranchRepositoryFacade
	UserRepo         UserRepositoryFacade
	ServiceRepo      ServiceRepositoryFacade
	AssignmentRepo   AssignmentRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
	CollaboratorRepo CollaboratorRepositoryFacade
	PayrollRepo      PayrollRepositoryFacade
	CatalogRepo      CatalogRepositoryFacade
	VehicleRepo      VehicleRepositoryFacade
	SupplierRepo     SupplierRepositoryFacade
	QuotaRepo        QuotaRepositoryFacade
	ReportingRepo    ReportingRepository
}
