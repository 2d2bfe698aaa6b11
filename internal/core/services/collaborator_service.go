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
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/utils"
)

// CollaboratorService handles the tenant's assignable staff.
type CollaboratorService struct {
	BaseService
	collaboratorRepo portsrepo.CollaboratorRepositoryFacade
}

// NewCollaboratorService creates a new CollaboratorService.
func NewCollaboratorService(cr portsrepo.CollaboratorRepositoryFacade) portssvc.CollaboratorSvcFacade {
	return &CollaboratorService{collaboratorRepo: cr}
}

var _ portssvc.CollaboratorSvcFacade = (*CollaboratorService)(nil)

func (s *CollaboratorService) GetCollaboratorByID(ctx context.Context, authCtx domain.AuthContext, collaboratorID string) (*domain.Collaborator, error) {
	return s.collaboratorRepo.FindCollaboratorByID(ctx, authCtx.FuneralHomeID, collaboratorID)
}

func (s *CollaboratorService) ListCollaborators(ctx context.Context, authCtx domain.AuthContext, filter domain.CollaboratorFilter) ([]domain.Collaborator, error) {
	return s.collaboratorRepo.ListCollaborators(ctx, authCtx.FuneralHomeID, filter)
}

func (s *CollaboratorService) CreateCollaborator(ctx context.Context, authCtx domain.AuthContext, req dto.CreateCollaboratorRequest) (*domain.Collaborator, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return nil, err
	}

	rut := utils.NormalizeRUT(req.RUT)
	if !utils.ValidateRUT(rut) {
		return nil, apperrors.NewValidationFailedError("RUT invalido", nil)
	}
	if req.SueldoBase.IsNegative() {
		return nil, apperrors.NewValidationFailedError("el sueldo base no puede ser negativo", nil)
	}

	collaborator := domain.Collaborator{
		CollaboratorID: uuid.NewString(),
		FuneralHomeID:  authCtx.FuneralHomeID,
		BranchID:       req.BranchID,
		FullName:       req.FullName,
		RUT:            rut,
		Email:          req.Email,
		Phone:          req.Phone,
		TipoContrato:   req.TipoContrato,
		SueldoBase:     req.SueldoBase,
		EstadoActivo:   true,
		AuditFields:    NewAudit(authCtx.UserID, time.Now()),
	}

	if err := s.collaboratorRepo.SaveCollaborator(ctx, collaborator); err != nil {
		s.LogError(ctx, err, "Failed to save collaborator", slog.String("rut", rut))
		return nil, err
	}
	s.LogInfo(ctx, "Collaborator created", slog.String("collaborator_id", collaborator.CollaboratorID))
	return &collaborator, nil
}

func (s *CollaboratorService) UpdateCollaborator(ctx context.Context, authCtx domain.AuthContext, collaboratorID string, req dto.UpdateCollaboratorRequest) (*domain.Collaborator, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return nil, err
	}

	collaborator, err := s.collaboratorRepo.FindCollaboratorByID(ctx, authCtx.FuneralHomeID, collaboratorID)
	if err != nil {
		return nil, err
	}

	if req.BranchID != nil {
		collaborator.BranchID = req.BranchID
	}
	if req.FullName != nil {
		collaborator.FullName = *req.FullName
	}
	if req.Email != nil {
		collaborator.Email = req.Email
	}
	if req.Phone != nil {
		collaborator.Phone = req.Phone
	}
	if req.TipoContrato != nil {
		collaborator.TipoContrato = *req.TipoContrato
	}
	if req.SueldoBase != nil {
		if req.SueldoBase.IsNegative() {
			return nil, apperrors.NewValidationFailedError("el sueldo base no puede ser negativo", nil)
		}
		collaborator.SueldoBase = *req.SueldoBase
	}
	Touch(&collaborator.AuditFields, authCtx.UserID, time.Now())

	if err := s.collaboratorRepo.UpdateCollaborator(ctx, *collaborator); err != nil {
		s.LogError(ctx, err, "Failed to update collaborator", slog.String("collaborator_id", collaboratorID))
		return nil, err
	}
	return collaborator, nil
}

func (s *CollaboratorService) DeactivateCollaborator(ctx context.Context, authCtx domain.AuthContext, collaboratorID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return err
	}
	return s.collaboratorRepo.MarkCollaboratorInactive(ctx, authCtx.FuneralHomeID, collaboratorID, authCtx.UserID)
}
