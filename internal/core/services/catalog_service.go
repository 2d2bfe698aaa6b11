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

// CatalogService handles the tenant's reference catalogs: plans, coffin and
// urn products, cemeteries/crematoriums and wake rooms.
type CatalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
	branchRepo  portsrepo.BranchRepositoryFacade
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(cr portsrepo.CatalogRepositoryFacade, br portsrepo.BranchRepositoryFacade) portssvc.CatalogSvcFacade {
	return &CatalogService{catalogRepo: cr, branchRepo: br}
}

var _ portssvc.CatalogSvcFacade = (*CatalogService)(nil)

// Plans

func (s *CatalogService) ListPlans(ctx context.Context, authCtx domain.AuthContext) ([]domain.Plan, error) {
	return s.catalogRepo.ListPlans(ctx, authCtx.FuneralHomeID, true)
}

func (s *CatalogService) GetPlanByID(ctx context.Context, authCtx domain.AuthContext, planID string) (*domain.Plan, error) {
	return s.catalogRepo.FindPlanByID(ctx, authCtx.FuneralHomeID, planID)
}

func (s *CatalogService) CreatePlan(ctx context.Context, authCtx domain.AuthContext, req dto.CreatePlanRequest) (*domain.Plan, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Precio.IsNegative() {
		return nil, apperrors.NewValidationFailedError("el precio no puede ser negativo", nil)
	}

	plan := domain.Plan{
		PlanID:        uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Precio:        req.Precio,
		Activo:        true,
		AuditFields:   NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.catalogRepo.SavePlan(ctx, plan); err != nil {
		s.LogError(ctx, err, "Failed to save plan", slog.String("nombre", req.Nombre))
		return nil, err
	}
	return &plan, nil
}

func (s *CatalogService) UpdatePlan(ctx context.Context, authCtx domain.AuthContext, planID string, req dto.UpdatePlanRequest) (*domain.Plan, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	plan, err := s.catalogRepo.FindPlanByID(ctx, authCtx.FuneralHomeID, planID)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		plan.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		plan.Descripcion = *req.Descripcion
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, apperrors.NewValidationFailedError("el precio no puede ser negativo", nil)
		}
		plan.Precio = *req.Precio
	}
	if req.Activo != nil {
		plan.Activo = *req.Activo
	}
	Touch(&plan.AuditFields, authCtx.UserID, time.Now())

	if err := s.catalogRepo.UpdatePlan(ctx, *plan); err != nil {
		s.LogError(ctx, err, "Failed to update plan", slog.String("plan_id", planID))
		return nil, err
	}
	return plan, nil
}

func (s *CatalogService) DeletePlan(ctx context.Context, authCtx domain.AuthContext, planID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return err
	}
	return s.catalogRepo.DeletePlan(ctx, authCtx.FuneralHomeID, planID)
}

// Coffins and urns

func (s *CatalogService) ListCoffinUrns(ctx context.Context, authCtx domain.AuthContext) ([]domain.CoffinUrn, error) {
	return s.catalogRepo.ListCoffinUrns(ctx, authCtx.FuneralHomeID, nil)
}

func (s *CatalogService) GetCoffinUrnByID(ctx context.Context, authCtx domain.AuthContext, coffinUrnID string) (*domain.CoffinUrn, error) {
	return s.catalogRepo.FindCoffinUrnByID(ctx, authCtx.FuneralHomeID, coffinUrnID)
}

func (s *CatalogService) CreateCoffinUrn(ctx context.Context, authCtx domain.AuthContext, req dto.CreateCoffinUrnRequest) (*domain.CoffinUrn, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Precio.IsNegative() {
		return nil, apperrors.NewValidationFailedError("el precio no puede ser negativo", nil)
	}

	item := domain.CoffinUrn{
		CoffinUrnID:   uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		Tipo:          req.Tipo,
		Modelo:        req.Modelo,
		Material:      req.Material,
		Precio:        req.Precio,
		Activo:        true,
		AuditFields:   NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.catalogRepo.SaveCoffinUrn(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save coffin/urn", slog.String("modelo", req.Modelo))
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) UpdateCoffinUrn(ctx context.Context, authCtx domain.AuthContext, coffinUrnID string, req dto.UpdateCoffinUrnRequest) (*domain.CoffinUrn, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	item, err := s.catalogRepo.FindCoffinUrnByID(ctx, authCtx.FuneralHomeID, coffinUrnID)
	if err != nil {
		return nil, err
	}

	if req.Tipo != nil {
		item.Tipo = *req.Tipo
	}
	if req.Modelo != nil {
		item.Modelo = *req.Modelo
	}
	if req.Material != nil {
		item.Material = *req.Material
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, apperrors.NewValidationFailedError("el precio no puede ser negativo", nil)
		}
		item.Precio = *req.Precio
	}
	if req.Activo != nil {
		item.Activo = *req.Activo
	}
	Touch(&item.AuditFields, authCtx.UserID, time.Now())

	if err := s.catalogRepo.UpdateCoffinUrn(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update coffin/urn", slog.String("coffin_urn_id", coffinUrnID))
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) DeleteCoffinUrn(ctx context.Context, authCtx domain.AuthContext, coffinUrnID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return err
	}
	return s.catalogRepo.DeleteCoffinUrn(ctx, authCtx.FuneralHomeID, coffinUrnID)
}

// Cemeteries and crematoriums

func (s *CatalogService) ListCemeteries(ctx context.Context, authCtx domain.AuthContext) ([]domain.CemeteryCrematorium, error) {
	return s.catalogRepo.ListCemeteries(ctx, authCtx.FuneralHomeID, nil)
}

func (s *CatalogService) GetCemeteryByID(ctx context.Context, authCtx domain.AuthContext, cemeteryID string) (*domain.CemeteryCrematorium, error) {
	return s.catalogRepo.FindCemeteryByID(ctx, authCtx.FuneralHomeID, cemeteryID)
}

func (s *CatalogService) CreateCemetery(ctx context.Context, authCtx domain.AuthContext, req dto.CreateCemeteryRequest) (*domain.CemeteryCrematorium, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	site := domain.CemeteryCrematorium{
		CemeteryID:    uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		Tipo:          req.Tipo,
		Nombre:        req.Nombre,
		Comuna:        req.Comuna,
		Direccion:     req.Direccion,
		Activo:        true,
		AuditFields:   NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.catalogRepo.SaveCemetery(ctx, site); err != nil {
		s.LogError(ctx, err, "Failed to save cemetery", slog.String("nombre", req.Nombre))
		return nil, err
	}
	return &site, nil
}

func (s *CatalogService) UpdateCemetery(ctx context.Context, authCtx domain.AuthContext, cemeteryID string, req dto.UpdateCemeteryRequest) (*domain.CemeteryCrematorium, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	site, err := s.catalogRepo.FindCemeteryByID(ctx, authCtx.FuneralHomeID, cemeteryID)
	if err != nil {
		return nil, err
	}

	if req.Tipo != nil {
		site.Tipo = *req.Tipo
	}
	if req.Nombre != nil {
		site.Nombre = *req.Nombre
	}
	if req.Comuna != nil {
		site.Comuna = *req.Comuna
	}
	if req.Direccion != nil {
		site.Direccion = *req.Direccion
	}
	if req.Activo != nil {
		site.Activo = *req.Activo
	}
	Touch(&site.AuditFields, authCtx.UserID, time.Now())

	if err := s.catalogRepo.UpdateCemetery(ctx, *site); err != nil {
		s.LogError(ctx, err, "Failed to update cemetery", slog.String("cemetery_id", cemeteryID))
		return nil, err
	}
	return site, nil
}

func (s *CatalogService) DeleteCemetery(ctx context.Context, authCtx domain.AuthContext, cemeteryID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return err
	}
	return s.catalogRepo.DeleteCemetery(ctx, authCtx.FuneralHomeID, cemeteryID)
}

// Wake rooms

func (s *CatalogService) ListRooms(ctx context.Context, authCtx domain.AuthContext) ([]domain.Room, error) {
	return s.catalogRepo.ListRooms(ctx, authCtx.FuneralHomeID, nil)
}

func (s *CatalogService) GetRoomByID(ctx context.Context, authCtx domain.AuthContext, roomID string) (*domain.Room, error) {
	return s.catalogRepo.FindRoomByID(ctx, authCtx.FuneralHomeID, roomID)
}

func (s *CatalogService) CreateRoom(ctx context.Context, authCtx domain.AuthContext, req dto.CreateRoomRequest) (*domain.Room, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	// The branch must belong to the caller's tenant.
	if _, err := s.branchRepo.FindBranchByID(ctx, authCtx.FuneralHomeID, req.BranchID); err != nil {
		return nil, err
	}

	room := domain.Room{
		RoomID:        uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		BranchID:      req.BranchID,
		Nombre:        req.Nombre,
		Capacidad:     req.Capacidad,
		Activo:        true,
		AuditFields:   NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.catalogRepo.SaveRoom(ctx, room); err != nil {
		s.LogError(ctx, err, "Failed to save room", slog.String("nombre", req.Nombre))
		return nil, err
	}
	return &room, nil
}

func (s *CatalogService) UpdateRoom(ctx context.Context, authCtx domain.AuthContext, roomID string, req dto.UpdateRoomRequest) (*domain.Room, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	room, err := s.catalogRepo.FindRoomByID(ctx, authCtx.FuneralHomeID, roomID)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		room.Nombre = *req.Nombre
	}
	if req.Capacidad != nil {
		room.Capacidad = req.Capacidad
	}
	if req.Activo != nil {
		room.Activo = *req.Activo
	}
	Touch(&room.AuditFields, authCtx.UserID, time.Now())

	if err := s.catalogRepo.UpdateRoom(ctx, *room); err != nil {
		s.LogError(ctx, err, "Failed to update room", slog.String("room_id", roomID))
		return nil, err
	}
	return room, nil
}

func (s *CatalogService) DeleteRoom(ctx context.Context, authCtx domain.AuthContext, roomID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return err
	}
	return s.catalogRepo.DeleteRoom(ctx, authCtx.FuneralHomeID, roomID)
}
