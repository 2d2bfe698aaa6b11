package services

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// QuotaSvcFacade defines operations for mortuary quota claims.
type QuotaSvcFacade interface {
	// GetQuotaByID retrieves a quota within the caller's funeral home.
	GetQuotaByID(ctx context.Context, authCtx domain.AuthContext, quotaID string) (*domain.MortuaryQuota, error)

	// ListQuotas retrieves the tenant's quotas narrowed by the filter.
	ListQuotas(ctx context.Context, authCtx domain.AuthContext, filter domain.QuotaFilter) ([]domain.MortuaryQuota, error)

	// CreateQuota files a claim against a case in the en_preparacion state.
	CreateQuota(ctx context.Context, authCtx domain.AuthContext, req dto.CreateQuotaRequest) (*domain.MortuaryQuota, error)

	// UpdateQuota updates a claim, stamping FiledAt when it enters ingresada
	// and ResolvedAt when it reaches a terminal state.
	UpdateQuota(ctx context.Context, authCtx domain.AuthContext, quotaID string, req dto.UpdateQuotaRequest) (*domain.MortuaryQuota, error)

	// DeleteQuota removes a claim.
	DeleteQuota(ctx context.Context, authCtx domain.AuthContext, quotaID string) error
}
