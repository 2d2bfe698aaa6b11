package repositories

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CollaboratorReader defines read operations for collaborator data
type CollaboratorReader interface {
	FindCollaboratorByID(ctx context.Context, funeralHomeID, collaboratorID string) (*domain.Collaborator, error)
	ListCollaborators(ctx context.Context, funeralHomeID string, filter domain.CollaboratorFilter) ([]domain.Collaborator, error)
}

// CollaboratorWriter defines write operations for collaborator data
type CollaboratorWriter interface {
	SaveCollaborator(ctx context.Context, collaborator domain.Collaborator) error
	UpdateCollaborator(ctx context.Context, collaborator domain.Collaborator) error

	// MarkCollaboratorInactive soft deletes via the estado_activo flag.
	MarkCollaboratorInactive(ctx context.Context, funeralHomeID, collaboratorID, updatedBy string) error
}

// CollaboratorRepositoryFacade combines collaborator repository interfaces.
type CollaboratorRepositoryFacade interface {
	CollaboratorReader
	CollaboratorWriter
}

// PayrollReader defines read operations for payroll data
type PayrollReader interface {
	FindPeriodByID(ctx context.Context, funeralHomeID, periodID string) (*domain.PayrollPeriod, error)
	FindPeriodByMonth(ctx context.Context, funeralHomeID string, year, month int) (*domain.PayrollPeriod, error)
	ListPeriods(ctx context.Context, funeralHomeID string) ([]domain.PayrollPeriod, error)
	FindReceiptByID(ctx context.Context, funeralHomeID, receiptID string) (*domain.PaymentReceipt, error)
	ListReceiptsByPeriod(ctx context.Context, funeralHomeID, periodID string) ([]domain.PaymentReceipt, error)
}

// PayrollWriter defines write operations for payroll data
type PayrollWriter interface {
	SavePeriod(ctx context.Context, period domain.PayrollPeriod) error
	UpdatePeriod(ctx context.Context, period domain.PayrollPeriod) error

	// ReplaceReceipts deletes and re-inserts the receipts of a period in one
	// transaction, so regeneration never leaves a partial batch.
	ReplaceReceipts(ctx context.Context, funeralHomeID, periodID string, receipts []domain.PaymentReceipt) error
}

// PayrollRepositoryFacade combines payroll repository interfaces.
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}
