package repositories

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// QuotaReader defines read operations for mortuary quota data
type QuotaReader interface {
	FindQuotaByID(ctx context.Context, funeralHomeID, quotaID string) (*domain.MortuaryQuota, error)
	ListQuotas(ctx context.Context, funeralHomeID string, filter domain.QuotaFilter) ([]domain.MortuaryQuota, error)
}

// QuotaWriter defines write operations for mortuary quota data
type QuotaWriter interface {
	SaveQuota(ctx context.Context, quota domain.MortuaryQuota) error
	UpdateQuota(ctx context.Context, quota domain.MortuaryQuota) error
	DeleteQuota(ctx context.Context, funeralHomeID, quotaID string) error
}

// QuotaRepositoryFacade combines mortuary quota repository interfaces.
type QuotaRepositoryFacade interface {
	QuotaReader
	QuotaWriter
}
