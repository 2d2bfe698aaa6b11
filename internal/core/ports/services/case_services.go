package services

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// CaseReaderSvc defines read operations for funeral cases.
type CaseReaderSvc interface {
	// GetServiceByID retrieves a funeral case within the caller's funeral home.
	GetServiceByID(ctx context.Context, authCtx domain.AuthContext, serviceID string) (*domain.Service, error)

	// ListServices retrieves the tenant's cases narrowed by the filter.
	ListServices(ctx context.Context, authCtx domain.AuthContext, filter domain.ServiceFilter) ([]domain.Service, error)
}

// CaseWriterSvc defines write operations for funeral cases.
type CaseWriterSvc interface {
	// CreateService opens a case and assigns its correlative number.
	CreateService(ctx context.Context, authCtx domain.AuthContext, req dto.CreateServiceRequest) (*domain.Service, error)

	// UpdateService updates a case, validating any status change.
	UpdateService(ctx context.Context, authCtx domain.AuthContext, serviceID string, req dto.UpdateServiceRequest) (*domain.Service, error)

	// DeleteService removes a case. Admin only.
	DeleteService(ctx context.Context, authCtx domain.AuthContext, serviceID string) error
}

// AssignmentSvc defines operations for collaborator assignments on a case.
type AssignmentSvc interface {
	// ListAssignments retrieves the assignments of a case.
	ListAssignments(ctx context.Context, authCtx domain.AuthContext, serviceID string) ([]domain.ServiceAssignment, error)

	// AssignCollaborator links a collaborator to a case.
	AssignCollaborator(ctx context.Context, authCtx domain.AuthContext, serviceID string, req dto.CreateAssignmentRequest) (*domain.ServiceAssignment, error)

	// RemoveAssignment unlinks a collaborator from a case.
	RemoveAssignment(ctx context.Context, authCtx domain.AuthContext, serviceID, assignmentID string) error
}

// CaseSvcFacade combines all funeral case service interfaces.
type CaseSvcFacade interface {
	CaseReaderSvc
	CaseWriterSvc
	AssignmentSvc
}
