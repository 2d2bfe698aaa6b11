package repositories

import (
	"context"
	"time"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// ReportingRepository fetches tenant-scoped raw rows for the reporting
// services, which reduce them in-process. Reports are recomputed on every
// request; there is no caching layer.
type ReportingRepository interface {
	// ListTenantServices returns every service of the tenant, optionally
	// bounded by creation date (inclusive).
	ListTenantServices(ctx context.Context, funeralHomeID string, desde, hasta *time.Time) ([]domain.Service, error)

	// ListTenantTransactions returns every transaction of the tenant in the
	// inclusive date window.
	ListTenantTransactions(ctx context.Context, funeralHomeID string, desde, hasta *time.Time) ([]domain.Transaction, error)

	// ListTenantExpenses returns every expense of the tenant in the inclusive
	// date window.
	ListTenantExpenses(ctx context.Context, funeralHomeID string, desde, hasta *time.Time) ([]domain.Expense, error)

	// CountQuotasByStatus counts the tenant's mortuary quotas in a status.
	CountQuotasByStatus(ctx context.Context, funeralHomeID string, estado domain.QuotaStatus) (int, error)
}
