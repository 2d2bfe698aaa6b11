package domain

import "time"

// ServiceFilter narrows a tenant-scoped service listing. Nil fields are
// ignored; date bounds are inclusive; Buscar matches case-insensitively
// against deceased and responsible names.
type ServiceFilter struct {
	Estado   *ServiceStatus
	Tipo     *ServiceType
	BranchID *string
	Desde    *time.Time
	Hasta    *time.Time
	Buscar   *string
}

// TransactionFilter narrows a tenant-scoped transaction listing.
type TransactionFilter struct {
	ServiceID *string
	Estado    *TransactionStatus
	Metodo    *PaymentMethod
	Desde     *time.Time
	Hasta     *time.Time
}

// ExpenseFilter narrows a tenant-scoped expense listing.
type ExpenseFilter struct {
	Categoria     *string
	SupplierID    *string
	ServiceID     *string
	EstadoFactura *InvoiceStatus
	Desde         *time.Time
	Hasta         *time.Time
}

// CollaboratorFilter narrows a tenant-scoped collaborator listing. Buscar
// matches name and RUT.
type CollaboratorFilter struct {
	BranchID        *string
	TipoContrato    *ContractType
	Buscar          *string
	IncludeInactive bool
}

// QuotaFilter narrows a tenant-scoped mortuary quota listing.
type QuotaFilter struct {
	ServiceID *string
	Estado    *QuotaStatus
}
