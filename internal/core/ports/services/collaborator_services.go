package services

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// CollaboratorSvcFacade defines operations for assignable staff.
type CollaboratorSvcFacade interface {
	// GetCollaboratorByID retrieves a collaborator within the caller's funeral home.
	GetCollaboratorByID(ctx context.Context, authCtx domain.AuthContext, collaboratorID string) (*domain.Collaborator, error)

	// ListCollaborators retrieves the tenant's collaborators narrowed by the filter.
	ListCollaborators(ctx context.Context, authCtx domain.AuthContext, filter domain.CollaboratorFilter) ([]domain.Collaborator, error)

	// CreateCollaborator registers a collaborator. The RUT is normalized and
	// checked for per-tenant uniqueness.
	CreateCollaborator(ctx context.Context, authCtx domain.AuthContext, req dto.CreateCollaboratorRequest) (*domain.Collaborator, error)

	// UpdateCollaborator updates a collaborator.
	UpdateCollaborator(ctx context.Context, authCtx domain.AuthContext, collaboratorID string, req dto.UpdateCollaboratorRequest) (*domain.Collaborator, error)

	// DeactivateCollaborator marks a collaborator inactive (soft delete).
	DeactivateCollaborator(ctx context.Context, authCtx domain.AuthContext, collaboratorID string) error
}

// PayrollSvcFacade defines operations for monthly payroll batches.
// All operations are restricted to admin.
type PayrollSvcFacade interface {
	// ListPeriods retrieves the tenant's payroll periods, newest first.
	ListPeriods(ctx context.Context, authCtx domain.AuthContext) ([]domain.PayrollPeriod, error)

	// GetPeriodByID retrieves a period within the caller's funeral home.
	GetPeriodByID(ctx context.Context, authCtx domain.AuthContext, periodID string) (*domain.PayrollPeriod, error)

	// OpenPeriod opens a monthly batch. Fails with a validation error when a
	// period already exists for that month.
	OpenPeriod(ctx context.Context, authCtx domain.AuthContext, req dto.OpenPayrollPeriodRequest) (*domain.PayrollPeriod, error)

	// GenerateReceipts recomputes the receipts of an open period from active
	// collaborators and their assignment extras. Earlier receipts of the
	// period are replaced.
	GenerateReceipts(ctx context.Context, authCtx domain.AuthContext, periodID string, req dto.GenerateReceiptsRequest) ([]domain.PaymentReceipt, error)

	// ListReceipts retrieves the receipts of a period.
	ListReceipts(ctx context.Context, authCtx domain.AuthContext, periodID string) ([]domain.PaymentReceipt, error)

	// ClosePeriod freezes an open period. Closed periods reject regeneration.
	ClosePeriod(ctx context.Context, authCtx domain.AuthContext, periodID string) (*domain.PayrollPeriod, error)

	// ReceiptPDF renders a single receipt as a PDF document.
	ReceiptPDF(ctx context.Context, authCtx domain.AuthContext, periodID, receiptID string) ([]byte, error)
}
