package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CreateQuotaRequest files a mortuary quota claim against a service.
type CreateQuotaRequest struct {
	ServiceID   string          `json:"serviceID" binding:"required,uuid"`
	Institucion string          `json:"institucion" binding:"required"`
	Monto       decimal.Decimal `json:"monto" binding:"required"`
}

// UpdateQuotaRequest partially updates a quota claim. Estado changes are
// validated against the known lifecycle states.
type UpdateQuotaRequest struct {
	Institucion *string             `json:"institucion"`
	Monto       *decimal.Decimal    `json:"monto"`
	Estado      *domain.QuotaStatus `json:"estado"`
}

// ListQuotasQuery captures the query parameters of the quota listing.
type ListQuotasQuery struct {
	ServiceID *string             `form:"serviceID"`
	Estado    *domain.QuotaStatus `form:"estado"`
}

// ToQuotaFilter converts the query DTO to a domain filter.
func (q ListQuotasQuery) ToQuotaFilter() domain.QuotaFilter {
	return domain.QuotaFilter{
		ServiceID: q.ServiceID,
		Estado:    q.Estado,
	}
}

// QuotaResponse defines data returned for a mortuary quota.
type QuotaResponse struct {
	QuotaID     string             `json:"quotaID"`
	ServiceID   string             `json:"serviceID"`
	Institucion string             `json:"institucion"`
	Monto       decimal.Decimal    `json:"monto"`
	Estado      domain.QuotaStatus `json:"estado"`
	FiledAt     *time.Time         `json:"filedAt,omitempty"`
	ResolvedAt  *time.Time         `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToQuotaResponse converts domain.MortuaryQuota to DTO.
func ToQuotaResponse(q *domain.MortuaryQuota) QuotaResponse {
	return QuotaResponse{
		QuotaID:     q.QuotaID,
		ServiceID:   q.ServiceID,
		Institucion: q.Institucion,
		Monto:       q.Monto,
		Estado:      q.Estado,
		FiledAt:     q.FiledAt,
		ResolvedAt:  q.ResolvedAt,
		CreatedAt:   q.CreatedAt,
	}
}

// ToQuotaListResponse converts a slice of quotas to DTOs.
func ToQuotaListResponse(quotas []domain.MortuaryQuota) []QuotaResponse {
	list := make([]QuotaResponse, len(quotas))
	for i, q := range quotas {
		list[i] = ToQuotaResponse(&q)
	}
	return list
}
