package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// QuotaService handles mortuary quota claims against funeral cases.
type QuotaService struct {
	BaseService
	quotaRepo   portsrepo.QuotaRepositoryFacade
	serviceRepo portsrepo.ServiceRepositoryFacade
}

// NewQuotaService creates a new QuotaService.
func NewQuotaService(qr portsrepo.QuotaRepositoryFacade, sr portsrepo.ServiceRepositoryFacade) portssvc.QuotaSvcFacade {
	return &QuotaService{quotaRepo: qr, serviceRepo: sr}
}

var _ portssvc.QuotaSvcFacade = (*QuotaService)(nil)

func (s *QuotaService) GetQuotaByID(ctx context.Context, authCtx domain.AuthContext, quotaID string) (*domain.MortuaryQuota, error) {
	return s.quotaRepo.FindQuotaByID(ctx, authCtx.FuneralHomeID, quotaID)
}

func (s *QuotaService) ListQuotas(ctx context.Context, authCtx domain.AuthContext, filter domain.QuotaFilter) ([]domain.MortuaryQuota, error) {
	return s.quotaRepo.ListQuotas(ctx, authCtx.FuneralHomeID, filter)
}

func (s *QuotaService) CreateQuota(ctx context.Context, authCtx domain.AuthContext, req dto.CreateQuotaRequest) (*domain.MortuaryQuota, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleEjecutivo, domain.RoleCaja); err != nil {
		return nil, err
	}
	if !req.Monto.IsPositive() {
		return nil, apperrors.NewValidationFailedError("el monto debe ser positivo", nil)
	}
	if _, err := s.serviceRepo.FindServiceByID(ctx, authCtx.FuneralHomeID, req.ServiceID); err != nil {
		return nil, err
	}

	quota := domain.MortuaryQuota{
		QuotaID:       uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		ServiceID:     req.ServiceID,
		Institucion:   req.Institucion,
		Monto:         req.Monto,
		Estado:        domain.QuotaEnPreparacion,
		AuditFields:   NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.quotaRepo.SaveQuota(ctx, quota); err != nil {
		s.LogError(ctx, err, "Failed to save quota", slog.String("service_id", req.ServiceID))
		return nil, err
	}
	s.LogInfo(ctx, "Quota claim created", slog.String("quota_id", quota.QuotaID))
	return &quota, nil
}

// UpdateQuota applies a partial update. Moving into ingresada stamps FiledAt;
// reaching aprobada, rechazada or pagada stamps ResolvedAt.
func (s *QuotaService) UpdateQuota(ctx context.Context, authCtx domain.AuthContext, quotaID string, req dto.UpdateQuotaRequest) (*domain.MortuaryQuota, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleEjecutivo, domain.RoleCaja); err != nil {
		return nil, err
	}

	quota, err := s.quotaRepo.FindQuotaByID(ctx, authCtx.FuneralHomeID, quotaID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Institucion != nil {
		quota.Institucion = *req.Institucion
	}
	if req.Monto != nil {
		if !req.Monto.IsPositive() {
			return nil, apperrors.NewValidationFailedError("el monto debe ser positivo", nil)
		}
		quota.Monto = *req.Monto
	}
	if req.Estado != nil {
		if !domain.ValidQuotaStatus(*req.Estado) {
			return nil, apperrors.NewValidationFailedError("estado de cuota desconocido", nil)
		}
		if *req.Estado == domain.QuotaIngresada && quota.FiledAt == nil {
			quota.FiledAt = &now
		}
		switch *req.Estado {
		case domain.QuotaAprobada, domain.QuotaRechazada, domain.QuotaPagada:
			if quota.ResolvedAt == nil {
				quota.ResolvedAt = &now
			}
		default:
			quota.ResolvedAt = nil
		}
		quota.Estado = *req.Estado
	}
	Touch(&quota.AuditFields, authCtx.UserID, now)

	if err := s.quotaRepo.UpdateQuota(ctx, *quota); err != nil {
		s.LogError(ctx, err, "Failed to update quota", slog.String("quota_id", quotaID))
		return nil, err
	}
	return quota, nil
}

func (s *QuotaService) DeleteQuota(ctx context.Context, authCtx domain.AuthContext, quotaID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return err
	}
	return s.quotaRepo.DeleteQuota(ctx, authCtx.FuneralHomeID, quotaID)
}
