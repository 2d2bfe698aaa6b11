package repositories

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// ServiceReader defines read operations for funeral case data
type ServiceReader interface {
	// FindServiceByID retrieves a service within the tenant scope.
	FindServiceByID(ctx context.Context, funeralHomeID, serviceID string) (*domain.Service, error)

	// ListServices retrieves tenant services matching the filter, ordered by
	// correlative number descending.
	ListServices(ctx context.Context, funeralHomeID string, filter domain.ServiceFilter) ([]domain.Service, error)

	// NextServiceNumber returns the next correlative number for the tenant.
	NextServiceNumber(ctx context.Context, funeralHomeID string) (int, error)
}

// ServiceWriter defines write operations for funeral case data
type ServiceWriter interface {
	SaveService(ctx context.Context, service domain.Service) error
	UpdateService(ctx context.Context, service domain.Service) error
	DeleteService(ctx context.Context, funeralHomeID, serviceID string) error
}

// ServiceRepositoryFacade combines all funeral case repository interfaces.
type ServiceRepositoryFacade interface {
	ServiceReader
	ServiceWriter
}

// AssignmentReader defines read operations for service assignments
type AssignmentReader interface {
	ListAssignmentsByService(ctx context.Context, funeralHomeID, serviceID string) ([]domain.ServiceAssignment, error)

	// ListAssignmentsForMonth returns the tenant's assignments whose service
	// was created in the given calendar month; used for payroll extras.
	ListAssignmentsForMonth(ctx context.Context, funeralHomeID string, year, month int) ([]domain.ServiceAssignment, error)
}

// AssignmentWriter defines write operations for service assignments
type AssignmentWriter interface {
	SaveAssignment(ctx context.Context, assignment domain.ServiceAssignment) error
	DeleteAssignment(ctx context.Context, funeralHomeID, assignmentID string) error
}

// AssignmentRepositoryFacade combines assignment repository interfaces.
type AssignmentRepositoryFacade interface {
	AssignmentReader
	AssignmentWriter
}
