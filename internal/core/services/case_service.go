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

// CaseService handles funeral cases and their collaborator assignments.
type CaseService struct {
	BaseService
	serviceRepo      portsrepo.ServiceRepositoryFacade
	assignmentRepo   portsrepo.AssignmentRepositoryFacade
	collaboratorRepo portsrepo.CollaboratorRepositoryFacade
}

// NewCaseService creates a new CaseService.
func NewCaseService(sr portsrepo.ServiceRepositoryFacade, ar portsrepo.AssignmentRepositoryFacade, cr portsrepo.CollaboratorRepositoryFacade) portssvc.CaseSvcFacade {
	return &CaseService{serviceRepo: sr, assignmentRepo: ar, collaboratorRepo: cr}
}

var _ portssvc.CaseSvcFacade = (*CaseService)(nil)

func (s *CaseService) GetServiceByID(ctx context.Context, authCtx domain.AuthContext, serviceID string) (*domain.Service, error) {
	return s.serviceRepo.FindServiceByID(ctx, authCtx.FuneralHomeID, serviceID)
}

func (s *CaseService) ListServices(ctx context.Context, authCtx domain.AuthContext, filter domain.ServiceFilter) ([]domain.Service, error) {
	return s.serviceRepo.ListServices(ctx, authCtx.FuneralHomeID, filter)
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("fecha invalida", err)
	}
	return &t, nil
}

func normalizeOptionalRUT(value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	rut := utils.NormalizeRUT(*value)
	if !utils.ValidateRUT(rut) {
		return nil, apperrors.NewValidationFailedError("RUT invalido", nil)
	}
	return &rut, nil
}

// CreateService opens a case and assigns the tenant's next correlative
// number.
func (s *CaseService) CreateService(ctx context.Context, authCtx domain.AuthContext, req dto.CreateServiceRequest) (*domain.Service, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleEjecutivo, domain.RoleOperaciones); err != nil {
		return nil, err
	}
	if !authCtx.CanAccessBranch(req.BranchID) {
		return nil, apperrors.NewForbiddenError("sin acceso a la sucursal", nil)
	}

	deathDate, err := parseDate(req.DeathDate)
	if err != nil {
		return nil, err
	}
	deceasedRUT, err := normalizeOptionalRUT(req.DeceasedRUT)
	if err != nil {
		return nil, err
	}
	responsibleRUT, err := normalizeOptionalRUT(req.ResponsibleRUT)
	if err != nil {
		return nil, err
	}

	numero, err := s.serviceRepo.NextServiceNumber(ctx, authCtx.FuneralHomeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute correlative number")
		return nil, err
	}

	service := domain.Service{
		ServiceID:     uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		BranchID:      req.BranchID,
		Numero:        numero,
		Tipo:          req.Tipo,
		Estado:        domain.ServiceBorrador,

		DeceasedName:     req.DeceasedName,
		DeceasedRUT:      deceasedRUT,
		DeathDate:        deathDate,
		ResponsibleName:  req.ResponsibleName,
		ResponsibleRUT:   responsibleRUT,
		ResponsiblePhone: req.ResponsiblePhone,
		ResponsibleEmail: req.ResponsibleEmail,

		PlanID:      req.PlanID,
		CoffinUrnID: req.CoffinUrnID,
		CemeteryID:  req.CemeteryID,
		VehicleID:   req.VehicleID,
		RoomID:      req.RoomID,

		TotalFinal:  req.TotalFinal,
		Descuento:   req.Descuento,
		Notas:       req.Notas,
		AuditFields: NewAudit(authCtx.UserID, time.Now()),
	}

	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		s.LogError(ctx, err, "Failed to save service", slog.Int("numero", numero))
		return nil, err
	}

	s.LogInfo(ctx, "Service created",
		slog.String("service_id", service.ServiceID),
		slog.Int("numero", numero),
		slog.String("tipo", string(service.Tipo)))
	return &service, nil
}

// UpdateService applies a partial update. Status changes only check enum
// membership; the front end drives the lifecycle order.
func (s *CaseService) UpdateService(ctx context.Context, authCtx domain.AuthContext, serviceID string, req dto.UpdateServiceRequest) (*domain.Service, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleEjecutivo, domain.RoleOperaciones); err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.FindServiceByID(ctx, authCtx.FuneralHomeID, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Estado != nil {
		if !domain.ValidServiceStatus(*req.Estado) {
			return nil, apperrors.NewValidationFailedError("estado de servicio desconocido", nil)
		}
		service.Estado = *req.Estado
	}
	if req.Tipo != nil {
		service.Tipo = *req.Tipo
	}
	if req.BranchID != nil {
		if !authCtx.CanAccessBranch(*req.BranchID) {
			return nil, apperrors.NewForbiddenError("sin acceso a la sucursal", nil)
		}
		service.BranchID = *req.BranchID
	}
	if req.DeceasedName != nil {
		service.DeceasedName = *req.DeceasedName
	}
	if req.DeceasedRUT != nil {
		rut, err := normalizeOptionalRUT(req.DeceasedRUT)
		if err != nil {
			return nil, err
		}
		service.DeceasedRUT = rut
	}
	if req.DeathDate != nil {
		d, err := parseDate(req.DeathDate)
		if err != nil {
			return nil, err
		}
		service.DeathDate = d
	}
	if req.ResponsibleName != nil {
		service.ResponsibleName = *req.ResponsibleName
	}
	if req.ResponsibleRUT != nil {
		rut, err := normalizeOptionalRUT(req.ResponsibleRUT)
		if err != nil {
			return nil, err
		}
		service.ResponsibleRUT = rut
	}
	if req.ResponsiblePhone != nil {
		service.ResponsiblePhone = req.ResponsiblePhone
	}
	if req.ResponsibleEmail != nil {
		service.ResponsibleEmail = req.ResponsibleEmail
	}
	if req.PlanID != nil {
		service.PlanID = req.PlanID
	}
	if req.CoffinUrnID != nil {
		service.CoffinUrnID = req.CoffinUrnID
	}
	if req.CemeteryID != nil {
		service.CemeteryID = req.CemeteryID
	}
	if req.VehicleID != nil {
		service.VehicleID = req.VehicleID
	}
	if req.RoomID != nil {
		service.RoomID = req.RoomID
	}
	if req.TotalFinal != nil {
		service.TotalFinal = *req.TotalFinal
	}
	if req.Descuento != nil {
		service.Descuento = *req.Descuento
	}
	if req.Notas != nil {
		service.Notas = *req.Notas
	}
	Touch(&service.AuditFields, authCtx.UserID, time.Now())

	if err := s.serviceRepo.UpdateService(ctx, *service); err != nil {
		s.LogError(ctx, err, "Failed to update service", slog.String("service_id", serviceID))
		return nil, err
	}
	return service, nil
}

func (s *CaseService) DeleteService(ctx context.Context, authCtx domain.AuthContext, serviceID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return err
	}
	return s.serviceRepo.DeleteService(ctx, authCtx.FuneralHomeID, serviceID)
}

func (s *CaseService) ListAssignments(ctx context.Context, authCtx domain.AuthContext, serviceID string) ([]domain.ServiceAssignment, error) {
	if _, err := s.serviceRepo.FindServiceByID(ctx, authCtx.FuneralHomeID, serviceID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListAssignmentsByService(ctx, authCtx.FuneralHomeID, serviceID)
}

func (s *CaseService) AssignCollaborator(ctx context.Context, authCtx domain.AuthContext, serviceID string, req dto.CreateAssignmentRequest) (*domain.ServiceAssignment, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return nil, err
	}
	if _, err := s.serviceRepo.FindServiceByID(ctx, authCtx.FuneralHomeID, serviceID); err != nil {
		return nil, err
	}

	collaborator, err := s.collaboratorRepo.FindCollaboratorByID(ctx, authCtx.FuneralHomeID, req.CollaboratorID)
	if err != nil {
		return nil, err
	}
	if !collaborator.EstadoActivo {
		return nil, apperrors.NewValidationFailedError("colaborador inactivo", nil)
	}

	assignment := domain.ServiceAssignment{
		AssignmentID:   uuid.NewString(),
		ServiceID:      serviceID,
		CollaboratorID: req.CollaboratorID,
		FuneralHomeID:  authCtx.FuneralHomeID,
		Rol:            req.Rol,
		ExtraPayType:   req.ExtraPayType,
		ExtraPayAmount: req.ExtraPayAmount,
		AuditFields:    NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.assignmentRepo.SaveAssignment(ctx, assignment); err != nil {
		s.LogError(ctx, err, "Failed to save assignment", slog.String("service_id", serviceID))
		return nil, err
	}
	return &assignment, nil
}

func (s *CaseService) RemoveAssignment(ctx context.Context, authCtx domain.AuthContext, serviceID, assignmentID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return err
	}
	if _, err := s.serviceRepo.FindServiceByID(ctx, authCtx.FuneralHomeID, serviceID); err != nil {
		return err
	}
	return s.assignmentRepo.DeleteAssignment(ctx, authCtx.FuneralHomeID, assignmentID)
}
